// Package testdb provides helpers for store integration tests.
//
// Tests call RequirePostgresURL or RequireMongoURL to locate a database.
// When no URL is configured the test is skipped locally and fails in CI,
// so a misconfigured pipeline cannot silently pass.
//
// For postgres, WithTx runs each test in a transaction that is rolled back
// when the test completes, which lets tests share tables and run in parallel:
//
//	func TestMyFeature(t *testing.T) {
//	    db := testdb.OpenPostgres(t)
//	    testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//	        users := postgres.NewPostgresUserStore(tx, nil)
//	        // ...
//	    })
//	}
package testdb
