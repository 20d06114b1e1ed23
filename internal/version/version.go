/*
Package version holds the release version.
*/
package version

// Version is the current version of patchmatch.
const Version = "0.1.0"
