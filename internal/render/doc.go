// Package render turns a validated configuration into the generated documents.
//
// Every document is a pure function of the configuration: the same
// configuration always yields byte-identical content. Templates are embedded
// and parsed once; all of them receive the same view, so a fact such as a
// service endpoint is formatted in exactly one place.
package render
