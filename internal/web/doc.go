// Package web serves the finder page without client scripts. Every request
// renders a fresh host document, drives a finder controller over it and
// writes the resulting HTML back. Option and toggle buttons are hydrated as
// named submit buttons and the group state rides along in hidden state.*
// fields, so a plain form post reproduces the page and applies one click or
// one search.
package web
