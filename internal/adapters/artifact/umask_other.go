//go:build !unix

package artifact

func setUmask(int) func() {
	return func() {}
}
