package esstu

import (
	"time"

	"github.com/gocolly/colly/v2"
	"github.com/notaneet/rasp03/model"
)

// Encoding кодировка, в которой портал отдаёт все страницы.
// Заголовкам ответа не верим: байты, которых нет в cp1251, становятся U+FFFD.
const Encoding = "windows-1251"

// Fetcher скачивает страницу портала и перекодирует её в UTF-8
type Fetcher struct {
	// 0 - таймаут транспорта по умолчанию
	Timeout time.Duration
}

// Fetch один GET без повторов и без кэша
func (f Fetcher) Fetch(url string) (string, error) {
	c := colly.NewCollector()
	if f.Timeout > 0 {
		c.SetRequestTimeout(f.Timeout)
	}

	var (
		body    []byte
		sent    bool
		failure error
	)

	c.OnRequest(func(r *colly.Request) {
		sent = true
		r.ResponseCharacterEncoding = Encoding
	})
	c.OnError(func(r *colly.Response, err error) {
		failure = err
	})
	c.OnResponse(func(r *colly.Response) {
		body = r.Body
	})

	if err := c.Visit(url); err != nil {
		// OnError вызывается только для ошибок транспорта и статусов не 2xx,
		// всё остальное после отправки запроса - перекодирование тела
		if failure != nil || !sent {
			return "", &model.NetworkError{URL: url, Err: err}
		}
		return "", &model.DecodeError{URL: url, Err: err}
	}

	return string(body), nil
}
