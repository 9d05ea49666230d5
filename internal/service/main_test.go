package service

import (
	"os"
	"testing"

	"bookstore/internal/tester"
)

func TestMain(m *testing.M) {
	tester.Setup()
	code := m.Run()

	os.Exit(code)
}
