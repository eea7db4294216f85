//go:build android

package main

import _ "coinrun/mobile"

func main() {}
