//go:build !amd64 && !arm64

package cpuinfo

func init() {
	currentLevel = detect()
}

func detect() Level {
	return Scalar
}
