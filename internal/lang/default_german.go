//go:build german

package lang

// Default is used until a language flag has been parsed.
const Default = German
