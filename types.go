package pagesblog

// NotFoundBody is the JSON body of a 404 from the article endpoint.
type NotFoundBody struct {
	Error string `json:"error"`
	Path  string `json:"path"`
}

const notFoundMessage = "Article not found"
