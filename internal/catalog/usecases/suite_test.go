package usecases_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestCatalogUsecases(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Catalog Usecases Suite")
}
