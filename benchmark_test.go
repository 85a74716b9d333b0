package langswap_test

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/ZaguanLabs/langswap"
)

const benchPage = `<!DOCTYPE html>
<html>
<body>
  <header><h1>[[ca]]Hola[[en]]Hello[[es]]Hola</h1></header>
  <main>
    <p>[[ca]]Benvingut[[en]]Welcome[[es]]Bienvenido</p>
    <p>[[ca]]Adeu[[en]]Goodbye[[es]]Adiós</p>
    <div data-lang="ca">Català</div>
    <div data-lang="en">English</div>
    <p>plain untagged paragraph</p>
  </main>
</body>
</html>`

func BenchmarkParseMarkup(b *testing.B) {
	text := "[[ca]]Hola món[[en]]Hello world[[es]]Hola mundo"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		langswap.ParseMarkup(text)
	}
}

func BenchmarkHasMarkup(b *testing.B) {
	text := "a long line of ordinary text with no markup in it at all"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		langswap.HasMarkup(text)
	}
}

func BenchmarkBuildIndex(b *testing.B) {
	for i := 0; i < b.N; i++ {
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(benchPage))
		if err != nil {
			b.Fatal(err)
		}
		eng := langswap.New(doc, langswap.WithDefaultLanguage("ca"))
		eng.BuildIndex()
	}
}

func BenchmarkApply(b *testing.B) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(benchPage))
	if err != nil {
		b.Fatal(err)
	}
	eng := langswap.New(doc, langswap.WithDefaultLanguage("ca"))
	eng.BuildIndex()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if i%2 == 0 {
			eng.Apply("en")
		} else {
			eng.Apply("ca")
		}
	}
}
