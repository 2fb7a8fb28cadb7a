package testdb

import "os"

// Environment variables consulted for test databases, in order of preference.
const (
	EnvTestDatabaseURL = "BLOG_TEST_DATABASE_URL"
	EnvDatabaseURL     = "DATABASE_URL"
	EnvTestMongoURL    = "BLOG_TEST_MONGODB_URL"
)

// PostgresURL returns the first configured postgres URL, or "".
func PostgresURL() string {
	return firstEnv(EnvTestDatabaseURL, EnvDatabaseURL)
}

// MongoURL returns the configured mongodb URL, or "".
func MongoURL() string {
	return firstEnv(EnvTestMongoURL)
}

// IsCI reports whether tests run under a CI provider.
func IsCI() bool {
	return firstEnv("CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL", "CIRCLECI") != ""
}

func firstEnv(names ...string) string {
	for _, name := range names {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}
