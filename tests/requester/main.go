package main

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"sync"
	"time"
)

const baseURL = "http://localhost:8080"

var categories = []string{"", "electronics", "fashion", "home", "agriculture"}

func main() {
	ids := fetchProductIDs()
	for {
		var wg sync.WaitGroup
		for range rand.Intn(10) {
			wg.Go(func() { doRequest(ids) })
		}
		wg.Wait()
		time.Sleep(20 * time.Millisecond)
	}
}

func fetchProductIDs() []string {
	resp, err := http.Get(baseURL + "/products?limit=100")
	if err != nil {
		fmt.Println("Ошибка запроса:", err)
		return nil
	}
	defer resp.Body.Close()

	var page struct {
		Items []struct {
			ID string `json:"id"`
		} `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		fmt.Println("Ошибка разбора ответа:", err)
		return nil
	}

	ids := make([]string, 0, len(page.Items))
	for _, it := range page.Items {
		ids = append(ids, it.ID)
	}
	return ids
}

func doRequest(ids []string) {
	var url string
	switch {
	case len(ids) > 0 && rand.Intn(3) > 0:
		url = baseURL + "/products/" + ids[rand.Intn(len(ids))]
	case rand.Intn(5) == 0:
		url = baseURL + "/products/00000000-0000-0000-0000-000000000000"
	default:
		url = fmt.Sprintf("%s/products?category=%s&page=%d", baseURL, categories[rand.Intn(len(categories))], rand.Intn(3)+1)
	}

	resp, err := http.Get(url)
	if err != nil {
		fmt.Println("Ошибка запроса:", err)
		return
	}
	fmt.Println("GET", url, "->", resp.Status)
	resp.Body.Close()
}
