package similarity

import (
	"math"
	"sort"
	"strings"
)

// Document is a single item's descriptive text keyed by its catalog id.
type Document struct {
	ID   string
	Text string
}

// Index holds normalized TF-IDF vectors for a fixed document set plus the
// precomputed pairwise cosine matrix. Deterministic for a given input order;
// rebuild from scratch whenever the catalog changes.
type Index struct {
	ids     []string
	pos     map[string]int
	vocab   map[string]int
	vectors [][]float64
	cosine  [][]float64
}

// Build tokenizes every document, weights terms by TF-IDF with smoothed
// inverse document frequency, L2-normalizes each vector and computes the full
// similarity matrix.
func Build(docs []Document) *Index {
	idx := &Index{
		ids: make([]string, 0, len(docs)),
		pos: make(map[string]int, len(docs)),
	}

	tokenized := make([][]string, 0, len(docs))
	df := make(map[string]int)
	for _, doc := range docs {
		tokens := tokenize(doc.Text)
		tokenized = append(tokenized, tokens)
		idx.pos[doc.ID] = len(idx.ids)
		idx.ids = append(idx.ids, doc.ID)

		seen := make(map[string]struct{}, len(tokens))
		for _, tok := range tokens {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}

	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	idx.vocab = make(map[string]int, len(terms))
	for i, term := range terms {
		idx.vocab[term] = i
	}

	n := float64(len(docs))
	idf := make([]float64, len(terms))
	for i, term := range terms {
		// Smoothed IDF keeps terms present in every document from zeroing out.
		idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}

	idx.vectors = make([][]float64, len(docs))
	for i, tokens := range tokenized {
		vec := make([]float64, len(terms))
		for _, tok := range tokens {
			vec[idx.vocab[tok]]++
		}
		var norm float64
		for j := range vec {
			vec[j] *= idf[j]
			norm += vec[j] * vec[j]
		}
		if norm > 0 {
			norm = math.Sqrt(norm)
			for j := range vec {
				vec[j] /= norm
			}
		}
		idx.vectors[i] = vec
	}

	idx.cosine = make([][]float64, len(docs))
	for i := range idx.vectors {
		idx.cosine[i] = make([]float64, len(docs))
		for j := range idx.vectors {
			if j < i {
				idx.cosine[i][j] = idx.cosine[j][i]
				continue
			}
			idx.cosine[i][j] = dot(idx.vectors[i], idx.vectors[j])
		}
	}
	return idx
}

// Similarity returns the cosine similarity between two documents, or 0 when
// either id is unknown.
func (x *Index) Similarity(a, b string) float64 {
	if x == nil {
		return 0
	}
	i, ok := x.pos[a]
	if !ok {
		return 0
	}
	j, ok := x.pos[b]
	if !ok {
		return 0
	}
	return x.cosine[i][j]
}

// Len reports the number of indexed documents.
func (x *Index) Len() int {
	if x == nil {
		return 0
	}
	return len(x.ids)
}

// VocabularySize reports the number of distinct weighted terms.
func (x *Index) VocabularySize() int {
	if x == nil {
		return 0
	}
	return len(x.vocab)
}

func dot(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

func tokenize(text string) []string {
	lower := strings.ToLower(text)
	fields := strings.FieldsFunc(lower, func(r rune) bool {
		return !((r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'))
	})
	var out []string
	for _, field := range fields {
		if len(field) < 2 {
			continue
		}
		if _, ok := stopWords[field]; ok {
			continue
		}
		out = append(out, field)
	}
	return out
}

var stopWords = func() map[string]struct{} {
	words := []string{
		"a", "about", "above", "after", "again", "against", "all", "am", "an",
		"and", "any", "are", "as", "at", "be", "because", "been", "before",
		"being", "below", "between", "both", "but", "by", "can", "did", "do",
		"does", "doing", "down", "during", "each", "few", "for", "from",
		"further", "had", "has", "have", "having", "he", "her", "here", "hers",
		"him", "his", "how", "i", "if", "in", "into", "is", "it", "its",
		"itself", "just", "me", "more", "most", "my", "myself", "no", "nor",
		"not", "now", "of", "off", "on", "once", "only", "or", "other", "our",
		"ours", "out", "over", "own", "per", "same", "she", "should", "so",
		"some", "such", "than", "that", "the", "their", "theirs", "them",
		"then", "there", "these", "they", "this", "those", "through", "to",
		"too", "under", "until", "up", "very", "was", "we", "were", "what",
		"when", "where", "which", "while", "who", "whom", "why", "will",
		"with", "you", "your", "yours", "yourself",
	}
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}()
