package router

import (
	"encoding/json"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"
)

// bindRequest fills req from the query string for GET requests and from the
// JSON body otherwise. Query binding matches fields by their json tag and
// supports the scalar kinds used by request models.
func bindRequest(r *http.Request, method string, req any) error {
	if method == http.MethodGet {
		return bindQuery(r, req)
	}

	if r.Body == nil {
		return nil
	}

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		return fmt.Errorf("invalid json body: %w", err)
	}

	return nil
}

func bindQuery(r *http.Request, req any) error {
	v := reflect.ValueOf(req).Elem()
	t := v.Type()

	for i := 0; i < v.NumField(); i++ {
		tag := t.Field(i).Tag.Get("json")
		name, _, _ := strings.Cut(tag, ",")
		if name == "" || name == "-" {
			continue
		}

		queryVal := r.URL.Query().Get(name)
		if queryVal == "" {
			continue
		}

		field := v.Field(i)
		switch field.Kind() {
		case reflect.String:
			field.SetString(queryVal)

		case reflect.Int, reflect.Int32, reflect.Int64:
			n, err := strconv.ParseInt(queryVal, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid integer value of %s: %w", name, err)
			}
			field.SetInt(n)

		case reflect.Bool:
			b, err := strconv.ParseBool(queryVal)
			if err != nil {
				return fmt.Errorf("invalid boolean value of %s: %w", name, err)
			}
			field.SetBool(b)
		}
	}

	return nil
}
