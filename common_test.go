package delta

import "math/rand"

type piece struct {
	val   string
	times int
}

func genBytes(elements []piece) []byte {
	var result []byte
	for _, e := range elements {
		for i := 0; i < e.times; i++ {
			result = append(result, e.val...)
		}
	}

	return result
}

func randBytes(n int) []byte {
	r := rand.New(rand.NewSource(42))
	buf := make([]byte, n)
	r.Read(buf)
	return buf
}
