// Package format names the text formats a tree can be read from and
// written to: VDF itself and the YAML and JSON interchange forms.
package format
