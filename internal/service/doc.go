// Package service contains the application use cases. StudyService turns a
// study request into study content by coordinating the encyclopedia client and
// the content generator, which it sees only through the TopicFetcher and
// ContentGenerator interfaces.
//
// A request moves through four steps and stops at the first failure:
//
//  1. Validate: the topic is trimmed and must be at least two characters; the
//     mode defaults to normal and must be normal or math.
//  2. Precondition: the AI service must be configured. This is checked before
//     any upstream call.
//  3. Fetch: the encyclopedia summary is retrieved.
//  4. Generate: study content is generated from the summary.
//
// Errors wrap the domain sentinels so the API layer can map them to HTTP
// statuses with errors.Is. Nothing is retried and no state is shared between
// requests.
package service
