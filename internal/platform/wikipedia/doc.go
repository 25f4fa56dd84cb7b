// Package wikipedia provides the encyclopedia client used to look up topics.
//
// It is an infrastructure adapter: it calls the Wikipedia REST summary endpoint,
// normalizes the response into domain.TopicData, and translates upstream failures
// into the domain error taxonomy (domain.ErrTopicNotFound for a missing page,
// domain.ErrUpstream for everything else). It performs exactly one request per
// lookup, with no retries and no caching.
package wikipedia
