package curves_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestCurves(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Curves Suite")
}
