// Package domain contains the core entities of the study assistant: the topic
// data fetched from the encyclopedia, the study content produced by the
// language model, the request mode, and the error taxonomy shared by every
// layer. It is independent of any specific infrastructure or delivery mechanism.
package domain
