// Package token provides tokenization support for VDF (Valve KeyValues) text.
//
// [NewTokenizer] scans input lazily, one [Token] per call to
// [Tokenizer.Next]. [Tokens] exposes the same scan as an iterator and
// [Tokenize] collects every token at once.
//
// Structural tokens are [TLCurl] and [TRCurl]. Keys and values are [TString]
// (double quoted) or [TLiteral] (bare words, accepted for tolerance with
// hand written files). Whitespace and // line comments are skipped.
package token
