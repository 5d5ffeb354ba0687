package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/elastic/go-elasticsearch"
	"github.com/grazeweb/my-eshop-app/internal/dto"
	"github.com/rs/zerolog/log"

	pkgdto "github.com/grazeweb/my-eshop-app/pkg/dto"
)

const productIndex = "products"

type ElasticsearchProductRepositoryImpl struct {
	elasticsearch *elasticsearch.Client
}

func CreateProductSearchRepository(client *elasticsearch.Client) ProductSearchRepository {
	return &ElasticsearchProductRepositoryImpl{elasticsearch: client}
}

func (r *ElasticsearchProductRepositoryImpl) IndexProduct(ctx context.Context, data dto.ProductResponse) (err error) {
	docBytes, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("error marshaling document: %w", err)
	}

	res, err := r.elasticsearch.Index(
		productIndex,
		bytes.NewReader(docBytes),
		r.elasticsearch.Index.WithDocumentID(data.ID),
		r.elasticsearch.Index.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("error indexing document: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error indexing document: %s", res.String())
	}

	return nil
}

func (r *ElasticsearchProductRepositoryImpl) DeleteProduct(ctx context.Context, id string) (err error) {
	res, err := r.elasticsearch.Delete(
		productIndex,
		id,
		r.elasticsearch.Delete.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("error deleting document: %w", err)
	}
	defer res.Body.Close()

	// 404 means the document never made it into the index; nothing to do.
	if res.IsError() && res.StatusCode != 404 {
		return fmt.Errorf("error deleting document: %s", res.String())
	}

	return nil
}

func (r *ElasticsearchProductRepositoryImpl) SearchProducts(ctx context.Context, filter pkgdto.Filter) ([]dto.ProductResponse, int, error) {
	query := map[string]interface{}{
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"must": []interface{}{},
			},
		},
	}

	boolQuery := query["query"].(map[string]interface{})["bool"].(map[string]interface{})

	if filter.Q != "" {
		boolQuery["must"] = append(boolQuery["must"].([]interface{}), map[string]interface{}{
			"match": map[string]interface{}{
				"name": filter.Q,
			},
		})
	}

	filters := []interface{}{}
	if filter.Category != "" {
		filters = append(filters, map[string]interface{}{
			"term": map[string]interface{}{
				"category_id": filter.Category,
			},
		})
	}
	if filter.Featured != nil {
		filters = append(filters, map[string]interface{}{
			"term": map[string]interface{}{
				"featured": *filter.Featured,
			},
		})
	}
	if len(filters) > 0 {
		boolQuery["filter"] = filters
	}

	if len(boolQuery["must"].([]interface{})) == 0 && boolQuery["filter"] == nil {
		query["query"] = map[string]interface{}{
			"match_all": map[string]interface{}{},
		}
	}

	if filter.Limit != 0 && filter.Page != 0 {
		query["from"] = (filter.Page - 1) * filter.Limit
		query["size"] = filter.Limit
	}

	var buf strings.Builder
	if err := json.NewEncoder(&buf).Encode(query); err != nil {
		return nil, 0, fmt.Errorf("error encoding query: %w", err)
	}

	res, err := r.elasticsearch.Search(
		r.elasticsearch.Search.WithContext(ctx),
		r.elasticsearch.Search.WithIndex(productIndex),
		r.elasticsearch.Search.WithBody(strings.NewReader(buf.String())),
		r.elasticsearch.Search.WithTrackTotalHits(true),
	)
	if err != nil {
		return nil, 0, fmt.Errorf("error performing search: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, 0, fmt.Errorf("error searching documents: %s", res.String())
	}

	var result map[string]interface{}
	if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
		return nil, 0, fmt.Errorf("error parsing the response body: %w", err)
	}

	hits, found := result["hits"].(map[string]interface{})["hits"].([]interface{})
	if !found {
		return nil, 0, fmt.Errorf("hits not found in the response")
	}

	total := int(result["hits"].(map[string]interface{})["total"].(map[string]interface{})["value"].(float64))

	var products []dto.ProductResponse
	for _, hit := range hits {
		source, found := hit.(map[string]interface{})["_source"]
		if !found {
			continue
		}
		productJSON, err := json.Marshal(source)
		if err != nil {
			return nil, 0, fmt.Errorf("error marshaling product: %w", err)
		}
		var product dto.ProductResponse
		if err := json.Unmarshal(productJSON, &product); err != nil {
			log.Ctx(ctx).Error().Err(err).Str("component", "SearchProducts").Msg("skipping malformed document")
			continue
		}
		products = append(products, product)
	}

	return products, total, nil
}
