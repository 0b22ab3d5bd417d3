package schema

import (
	"os"
	"testing"

	"github.com/BuyMeAnIcecream/a-journey-in-the-dark/pkg/logger"
)

func TestMain(m *testing.M) {
	// Initialize the global logger before running any tests
	logger.Init()

	// Exit with the result of the tests
	os.Exit(m.Run())
}
