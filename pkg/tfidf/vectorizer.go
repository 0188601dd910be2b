// Package tfidf implements a small TF-IDF vectorizer with word n-grams and
// sparse cosine similarity.
package tfidf

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

// Runs of two or more word characters.
var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)

type Options struct {
	// StopWords are dropped before n-grams are formed.
	StopWords map[string]struct{}
	// MaxNGram is the largest n-gram size; values below 1 mean unigrams only.
	MaxNGram int
}

// Vector is a sparse row keyed by vocabulary index.
type Vector map[int]float64

// Vectorizer holds a fitted vocabulary and IDF weights. It is read-only after Fit.
type Vectorizer struct {
	vocabulary map[string]int
	idf        []float64
	stopWords  map[string]struct{}
	maxNGram   int
}

// Fit learns the vocabulary and IDF weights from docs and returns the
// vectorizer together with the L2-normalised rows for docs, in order.
func Fit(docs []string, opts Options) (*Vectorizer, []Vector) {
	v := &Vectorizer{
		vocabulary: make(map[string]int),
		stopWords:  opts.StopWords,
		maxNGram:   opts.MaxNGram,
	}
	if v.maxNGram < 1 {
		v.maxNGram = 1
	}

	analyzed := make([][]string, len(docs))
	docFreq := make(map[string]int)
	for i, doc := range docs {
		terms := v.Analyze(doc)
		analyzed[i] = terms

		seen := make(map[string]struct{}, len(terms))
		for _, term := range terms {
			if _, ok := seen[term]; ok {
				continue
			}
			seen[term] = struct{}{}
			docFreq[term]++
		}
	}

	terms := make([]string, 0, len(docFreq))
	for term := range docFreq {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	n := float64(len(docs))
	v.idf = make([]float64, len(terms))
	for i, term := range terms {
		v.vocabulary[term] = i
		v.idf[i] = math.Log((1+n)/(1+float64(docFreq[term]))) + 1
	}

	rows := make([]Vector, len(docs))
	for i, terms := range analyzed {
		rows[i] = v.weigh(terms)
	}
	return v, rows
}

// Analyze lower-cases doc, tokenizes it, removes stop words and emits
// unigrams followed by longer n-grams.
func (v *Vectorizer) Analyze(doc string) []string {
	tokens := tokenPattern.FindAllString(strings.ToLower(doc), -1)

	kept := tokens[:0]
	for _, tok := range tokens {
		if _, stop := v.stopWords[tok]; stop {
			continue
		}
		kept = append(kept, tok)
	}

	terms := make([]string, 0, len(kept)*v.maxNGram)
	terms = append(terms, kept...)
	for n := 2; n <= v.maxNGram; n++ {
		for i := 0; i+n <= len(kept); i++ {
			terms = append(terms, strings.Join(kept[i:i+n], " "))
		}
	}
	return terms
}

// Transform projects doc into the fitted space. Terms outside the vocabulary are ignored.
func (v *Vectorizer) Transform(doc string) Vector {
	return v.weigh(v.Analyze(doc))
}

func (v *Vectorizer) VocabularySize() int {
	return len(v.vocabulary)
}

func (v *Vectorizer) weigh(terms []string) Vector {
	vec := make(Vector)
	for _, term := range terms {
		if idx, ok := v.vocabulary[term]; ok {
			vec[idx]++
		}
	}

	var norm float64
	for idx, count := range vec {
		w := count * v.idf[idx]
		vec[idx] = w
		norm += w * w
	}
	if norm == 0 {
		return vec
	}

	norm = math.Sqrt(norm)
	for idx := range vec {
		vec[idx] /= norm
	}
	return vec
}

// Norm returns the Euclidean length of vec.
func (vec Vector) Norm() float64 {
	var sum float64
	for _, w := range vec {
		sum += w * w
	}
	return math.Sqrt(sum)
}

// Dot is the inner product of two sparse vectors.
func Dot(a, b Vector) float64 {
	if len(b) < len(a) {
		a, b = b, a
	}
	var sum float64
	for idx, w := range a {
		sum += w * b[idx]
	}
	return sum
}

// Cosine returns the cosine similarity of a and b, 0 when either is empty.
func Cosine(a, b Vector) float64 {
	na, nb := a.Norm(), b.Norm()
	if na == 0 || nb == 0 {
		return 0
	}
	return Dot(a, b) / (na * nb)
}
