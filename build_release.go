//go:build release

package hexlog

const debugBuild = false
