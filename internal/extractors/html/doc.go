// Package html extracts readable text from HTML job postings saved from
// a browser.
package html
