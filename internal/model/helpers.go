package model

import "edutrack-service/internal/store"

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func defaultString(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func putIfSet(doc store.Document, key, value string) {
	if value != "" {
		doc[key] = value
	}
}

func putPtr[T any](doc store.Document, key string, value *T) {
	if value != nil {
		doc[key] = *value
	}
}
