// Package textproc adapts third-party NLP libraries into the token stream the
// sentiment pipeline consumes.
package textproc

import (
	"log/slog"
	"strings"
	"sync"
	"unicode"

	"github.com/bbalet/stopwords"
	"github.com/jdkato/prose/v2"
	"github.com/spacesedan/sentireview/internal/models"
)

const defaultLanguage = "en"

// bracketSpacer detaches angle brackets so "<love>" tokenizes as a word.
var bracketSpacer = strings.NewReplacer("<", " < ", ">", " > ")

// pronounStopWords are personal pronouns the bbalet English dictionary lacks
// (it has no "i") but which are stop words in common English lists.
var pronounStopWords = map[string]bool{
	"i": true, "me": true, "my": true, "myself": true,
	"we": true, "us": true, "our": true, "ours": true, "ourselves": true,
	"you": true, "your": true, "yours": true, "yourself": true, "yourselves": true,
	"he": true, "him": true, "his": true, "himself": true,
	"she": true, "her": true, "hers": true, "herself": true,
	"it": true, "its": true, "itself": true,
	"they": true, "them": true, "their": true, "theirs": true, "themselves": true,
}

// Processor tokenizes English text with prose and flags stop words with the
// bbalet/stopwords dictionary.
type Processor struct {
	lang      string
	stopCache sync.Map
}

func NewProcessor() *Processor {
	return &Processor{lang: defaultLanguage}
}

// Tokenize returns the tokens of text in order. Markup is flattened first.
// A tokenizer failure yields no tokens.
func (p *Processor) Tokenize(text string) []models.Token {
	plain := strings.TrimSpace(bracketSpacer.Replace(StripMarkup(text)))
	if plain == "" {
		return nil
	}

	doc, err := prose.NewDocument(plain,
		prose.WithTagging(false),
		prose.WithSegmentation(false),
		prose.WithExtraction(false))
	if err != nil {
		slog.Warn("[Processor] Tokenization failed",
			slog.String("error", err.Error()))
		return nil
	}

	raw := doc.Tokens()
	tokens := make([]models.Token, 0, len(raw))
	for _, tok := range raw {
		tokens = append(tokens, models.Token{
			Text:    tok.Text,
			IsStop:  p.IsStop(tok.Text),
			IsAlpha: IsAlpha(tok.Text),
		})
	}
	return tokens
}

// IsStop reports whether word is in the stop-word dictionary. Words without
// letters are never stop words.
func (p *Processor) IsStop(word string) bool {
	word = strings.ToLower(word)
	if !hasLetter(word) {
		return false
	}
	if pronounStopWords[word] {
		return true
	}
	if cached, ok := p.stopCache.Load(word); ok {
		return cached.(bool)
	}

	stop := strings.TrimSpace(stopwords.CleanString(word, p.lang, false)) == ""
	p.stopCache.Store(word, stop)
	return stop
}

// IsAlpha reports whether s is non-empty and made only of letters.
func IsAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
