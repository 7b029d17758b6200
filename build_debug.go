//go:build !release

package hexlog

// debugBuild enables the Debug and Lvl helpers. Build with -tags release to compile them out.
const debugBuild = true
