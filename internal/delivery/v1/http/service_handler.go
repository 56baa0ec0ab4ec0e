package http

import "net/http"

const indexPage = `<!DOCTYPE html>
<html>
<head><title>Product Catalog</title></head>
<body>
<h1>Product Catalog Administration</h1>
<p>REST API для каталога товаров. Документация: <a href="/swagger/index.html">/swagger</a></p>
</body>
</html>
`

// index
//
//	@Summary	Корневая страница сервиса
//	@Produce	html
//	@Success	200	{string}	string	"Стартовая страница"
//	@Router		/ [get]
func index(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(indexPage))
}

// health
//
//	@Summary	Проверка живости сервиса
//	@Produce	json
//	@Success	200	{object}	map[string]string
//	@Router		/health [get]
func health(w http.ResponseWriter, _ *http.Request) {
	WriteSuccess(w, http.StatusOK, map[string]string{"message": "OK"})
}
