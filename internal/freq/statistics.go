package freq

import (
	"math"
	"strings"
)

const alphabetSize = 26

// EnglishIoC is the index of coincidence of English prose. Monoalphabetic
// ciphertext keeps this value; polyalphabetic ciphertext flattens toward
// the uniform 1/26 ≈ 0.0385.
const EnglishIoC = 0.065

// englishFreq holds the relative frequency of each English letter A-Z,
// measured over a large corpus.
var englishFreq = [alphabetSize]float64{
	0.08167, 0.01492, 0.02782, 0.04253, 0.12702, 0.02228, 0.02015, // A-G
	0.06094, 0.06966, 0.00153, 0.00772, 0.04025, 0.02406, 0.06749, // H-N
	0.07507, 0.01929, 0.00095, 0.05987, 0.06327, 0.09056, 0.02758, // O-U
	0.00978, 0.0236, 0.0015, 0.01974, 0.00074, // V-Z
}

// ObservedFrequencies computes the relative frequency of each letter A-Z
// in text, case-insensitively, and the number of letters counted. A text
// without letters yields the zero distribution.
func ObservedFrequencies(text string) ([alphabetSize]float64, int) {
	var observed [alphabetSize]float64
	total := 0
	for _, r := range strings.ToUpper(text) {
		if r < 'A' || r > 'Z' {
			continue
		}
		observed[r-'A']++
		total++
	}
	if total > 0 {
		for i := range observed {
			observed[i] /= float64(total)
		}
	}
	return observed, total
}

// ChiSquared measures how far an observed letter distribution is from
// English. Lower is closer.
func ChiSquared(observed [alphabetSize]float64) float64 {
	var chiSq float64
	for i := range observed {
		if englishFreq[i] != 0 {
			chiSq += math.Pow(observed[i]-englishFreq[i], 2) / englishFreq[i]
		}
	}
	return chiSq
}

// BestCaesarShift finds the Caesar shift that, applied to text, brings
// its letter distribution closest to English, together with the
// chi-squared statistic at that shift.
func BestCaesarShift(text string) (int, float64) {
	observed, _ := ObservedFrequencies(text)

	bestShift := 0
	minChiSq := math.Inf(1)
	for shift := 0; shift < alphabetSize; shift++ {
		var shifted [alphabetSize]float64
		for i := range shifted {
			shifted[i] = observed[(i+shift)%alphabetSize]
		}
		if chiSq := ChiSquared(shifted); chiSq < minChiSq {
			minChiSq = chiSq
			bestShift = shift
		}
	}
	return bestShift, minChiSq
}

// IndexOfCoincidence is the probability that two letters drawn from text
// at distinct positions are equal. Texts shorter than two letters have
// no pairs to draw, so the index is zero.
func IndexOfCoincidence(text string) float64 {
	counts := LetterCounts(text)
	total := 0
	for _, count := range counts {
		total += count
	}
	if total < 2 {
		return 0
	}

	sum := 0.0
	for _, count := range counts {
		sum += float64(count * (count - 1))
	}
	return sum / (float64(total) * float64(total-1))
}
