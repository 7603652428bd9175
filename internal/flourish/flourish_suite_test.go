package flourish_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestFlourish(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Flourish Suite")
}
