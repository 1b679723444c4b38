package esstu

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/notaneet/rasp03/model"
	"golang.org/x/text/cases"
)

// LocateGroup href первой (в порядке документа) ссылки, в тексте которой есть group.
// Сравнение без учёта регистра, битая разметка - просто нет совпадения.
func LocateGroup(markup, group string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return "", model.ErrGroupNotFound
	}

	fold := cases.Fold()
	needle := fold.String(group)

	var href string
	found := false
	doc.Find("a[href]").EachWithBreak(func(i int, sel *goquery.Selection) bool {
		text := strings.TrimSpace(sel.Text())
		if strings.Contains(fold.String(text), needle) {
			href, _ = sel.Attr("href")
			found = true
			return false
		}
		return true
	})

	if !found {
		return "", model.ErrGroupNotFound
	}
	return href, nil
}

// ResolveGroupURL абсолютный адрес страницы группы относительно страницы со списком
func ResolveGroupURL(base, href string) (string, error) {
	b, err := url.Parse(base)
	if err != nil {
		return "", err
	}
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return "", err
	}
	return b.ResolveReference(ref).String(), nil
}
