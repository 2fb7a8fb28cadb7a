// Package mocks provides centralized mock implementations for testing.
//
// Each mock has function fields for every interface method plus simple
// defaults, and records how often it was called so tests can assert that a
// request never reached the store.
//
// Usage:
//
//	import "github.com/phrazzld/blog-api/internal/mocks"
//
//	func TestSomething(t *testing.T) {
//	    jwtService := &mocks.MockJWTService{
//	        GenerateTokenFn: func(ctx context.Context, userID uuid.UUID, email string) (string, error) {
//	            return "mocked-token", nil
//	        },
//	    }
//
//	    // Use the mock in your test...
//	}
package mocks
