// Package lcs computes common subsequences of two sequences, the
// anchors the delta encoder aligns on. Longest is the default provider
// and returns a true longest common subsequence; Bytes and Runes trade
// maximality for speed on large inputs. Every provider is stateless and
// the returned sequence is owned by the caller.
package lcs

// Longest returns a longest common subsequence of a and b: a maximal
// length sequence of elements appearing, in the same relative order, in
// both inputs. Ties are broken deterministically. Time and space are
// O(len(a)*len(b)).
func Longest[T comparable](a, b []T) []T {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}

	// table[i][j] holds the subsequence length for the suffixes a[i:]
	// and b[j:], so the result can be walked out forward.
	table := make([][]int, len(a)+1)
	for i := range table {
		table[i] = make([]int, len(b)+1)
	}

	for i := len(a) - 1; i >= 0; i-- {
		for j := len(b) - 1; j >= 0; j-- {
			switch {
			case a[i] == b[j]:
				table[i][j] = table[i+1][j+1] + 1
			case table[i+1][j] >= table[i][j+1]:
				table[i][j] = table[i+1][j]
			default:
				table[i][j] = table[i][j+1]
			}
		}
	}

	seq := make([]T, 0, table[0][0])
	for i, j := 0, 0; table[i][j] > 0; {
		switch {
		case a[i] == b[j]:
			seq = append(seq, a[i])
			i++
			j++
		case table[i+1][j] >= table[i][j+1]:
			i++
		default:
			j++
		}
	}

	return seq
}
