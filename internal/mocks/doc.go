// Package mocks provides centralized mock implementations for testing.
//
// Each mock exposes function fields for overriding behavior, default return
// values, and mutex-guarded call tracking so tests can assert which upstream
// collaborators were (or were not) contacted.
//
// Usage:
//
//	import "github.com/phrazzld/study-api/internal/mocks"
//
//	func TestSomething(t *testing.T) {
//	    fetcher := mocks.NewMockTopicFetcherWithData(mocks.SampleTopic())
//	    generator := mocks.NewMockContentGeneratorWithContent(mocks.SampleContent(domain.ModeNormal))
//
//	    // Use the mocks in your test...
//	}
//
// When adding a new mock to this package:
//  1. Create a new file named after the interface being mocked
//  2. Implement the mock struct with function fields for each interface method
//  3. Document any helper methods or special functionality
package mocks
