// Package resolve implements listing and content assembly over the merged
// template universe.
//
// The universe is the union of the cached remote catalog, the user's custom
// templates, and the user's aliases; simple mode restricts it to the catalog.
// Listing matches query tokens as literal prefixes and never fails. Get
// requires exact matches for every token, expands aliases depth-first in
// declared order, and concatenates bodies in the original request order, each
// framed by a header and footer naming its source.
package resolve
