package oaikit

// Version is the library version reported in error logs and the User-Agent header.
const Version = "0.4.0"
