//go:build !german

package lang

// Default is used until a language flag has been parsed. Builds tagged
// "german" flip it for distribution to German-speaking users.
const Default = English
