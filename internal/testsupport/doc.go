// Package testsupport builds isolated site settings for tests.
//
// NewOverrides gives each test its own holder, builder and fixture directory
// with defaults already installed. UseShared and Serialize cover the case
// where several tests share one Overrides. StubFlat, StubSectioned and
// StubContent return testify mocks whose named members return the supplied
// values.
package testsupport
