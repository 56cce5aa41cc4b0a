package constant

// A design carries one main image plus at most this many gallery images.
const MaxSubImages = 10
