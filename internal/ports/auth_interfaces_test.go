package ports_test

import (
	"testing"

	"github.com/target/ticketdesk/internal/mocks"
	mocksauth "github.com/target/ticketdesk/internal/mocks/auth"
	"github.com/target/ticketdesk/internal/ports"
)

// This test only verifies that our mocks conform to the ports at compile time.
func TestMocksImplementPorts(t *testing.T) {
	t.Helper()

	var _ ports.AuthAPI = (*mocksauth.StubAuthAPI)(nil)
	var _ ports.CredentialStore = (*mocksauth.MemoryCredentialStore)(nil)
	var _ ports.CredentialStore = (*mocks.MockCredentialStore)(nil)
}
