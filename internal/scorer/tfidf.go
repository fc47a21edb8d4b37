package scorer

import (
	"errors"
	"math"
	"regexp"
	"sort"
	"strings"
)

// 词元模式：两个及以上的连续词字符（单字符 token 不参与向量化）
var tokenRe = regexp.MustCompile(`\w\w+`)

// errEmptyVocabulary 停用词过滤后词表为空，无法构建向量
var errEmptyVocabulary = errors.New("词表为空，无法进行TF-IDF向量化")

// tfidfVectorizer 面向两篇文档的 TF-IDF 向量器
// 每次评分新建实例，不在请求间共享任何状态
type tfidfVectorizer struct {
	maxFeatures int     // 词表特征数上限
	maxDF       float64 // 文档频率比例上限
}

// newTFIDFVectorizer 创建固定参数的向量器：
// 最多1000维特征，英文停用词过滤，一元词+二元词，min_df=1，max_df=0.9
func newTFIDFVectorizer() *tfidfVectorizer {
	return &tfidfVectorizer{
		maxFeatures: 1000,
		maxDF:       0.9,
	}
}

// terms 分词、去停用词并生成一元词和相邻二元词
func (v *tfidfVectorizer) terms(text string) []string {
	tokens := tokenRe.FindAllString(strings.ToLower(text), -1)

	unigrams := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if !isStopWord(tok) {
			unigrams = append(unigrams, tok)
		}
	}

	terms := make([]string, 0, len(unigrams)*2)
	terms = append(terms, unigrams...)
	for i := 0; i+1 < len(unigrams); i++ {
		terms = append(terms, unigrams[i]+" "+unigrams[i+1])
	}
	return terms
}

// CosineSimilarity 在恰好两篇文档上构建向量空间并计算余弦相似度
// 结果限制在 [0,1]；任一文档为空或词表坍缩时返回错误
func (v *tfidfVectorizer) CosineSimilarity(textA, textB string) (float64, error) {
	docs := [][]string{v.terms(textA), v.terms(textB)}
	if len(docs[0]) == 0 || len(docs[1]) == 0 {
		return 0, errEmptyVocabulary
	}

	// 词频统计
	counts := []map[string]float64{
		termCounts(docs[0]),
		termCounts(docs[1]),
	}

	// 文档频率；词表按语料总频次截断到 maxFeatures
	df := make(map[string]int)
	total := make(map[string]float64)
	for _, c := range counts {
		for term, n := range c {
			df[term]++
			total[term] += n
		}
	}

	// 文档频率上限按 ceil(maxDF·n) 取整后过滤，
	// 两篇文档的场景下不会剔除同时出现在两篇中的词项
	// （语义分数的自相似性质依赖于此）
	n := len(docs)
	maxDocCount := int(math.Ceil(v.maxDF * float64(n)))
	vocab := make([]string, 0, len(df))
	for term, count := range df {
		if count <= maxDocCount {
			vocab = append(vocab, term)
		}
	}
	if len(vocab) == 0 {
		return 0, errEmptyVocabulary
	}

	if len(vocab) > v.maxFeatures {
		sort.Slice(vocab, func(i, j int) bool {
			if total[vocab[i]] != total[vocab[j]] {
				return total[vocab[i]] > total[vocab[j]]
			}
			return vocab[i] < vocab[j]
		})
		vocab = vocab[:v.maxFeatures]
	}

	// 平滑IDF: ln((1+n)/(1+df)) + 1
	vecA := make([]float64, len(vocab))
	vecB := make([]float64, len(vocab))
	for i, term := range vocab {
		idf := math.Log(float64(1+n)/float64(1+df[term])) + 1
		vecA[i] = counts[0][term] * idf
		vecB[i] = counts[1][term] * idf
	}

	sim := cosine(vecA, vecB)
	return math.Max(0, math.Min(1, sim)), nil
}

func termCounts(terms []string) map[string]float64 {
	counts := make(map[string]float64, len(terms))
	for _, t := range terms {
		counts[t]++
	}
	return counts
}

// cosine 余弦相似度，零向量时返回0
func cosine(a, b []float64) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
