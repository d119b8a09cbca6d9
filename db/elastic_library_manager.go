package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/olivere/elastic/v7"

	"library/models"
)

const BOOKS_PAGE_SIZE = 1000

const booksMapping = `{
	"mappings": {
		"properties": {
			"title":         {"type": "text", "fields": {"keyword": {"type": "keyword", "ignore_above": 256}}},
			"comments":      {"type": "text"},
			"book_id":       {"type": "keyword"},
			"comment_count": {"type": "long"},
			"created_at":    {"type": "long"}
		}
	}
}`

const addCommentScript = "ctx._source.comments.add(params.comment); ctx._source.comment_count = ctx._source.comments.size()"

type elasticBook struct {
	BookId       string   `json:"book_id"`
	Title        string   `json:"title"`
	Comments     []string `json:"comments"`
	CommentCount int      `json:"comment_count"`
	CreatedAt    int64    `json:"created_at"`
}

func (doc *elasticBook) toBook(id string) *models.Book {
	comments := doc.Comments
	if comments == nil {
		comments = []string{}
	}
	return &models.Book{Id: id, Title: doc.Title, Comments: comments}
}

// ElasticLibraryManager stores books as documents of a single Elasticsearch index.
// Every write refreshes the index so the next read observes it.
// Books are listed by creation time, ties broken by id, one page of PageSize at a time.
type ElasticLibraryManager struct {
	IndexName     string
	ElasticClient *elastic.Client
	PageSize      int
}

func NewElasticLibrary(ctx context.Context, indexName string, elasticClient *elastic.Client) (*ElasticLibraryManager, error) {
	library := &ElasticLibraryManager{IndexName: indexName, ElasticClient: elasticClient, PageSize: BOOKS_PAGE_SIZE}

	if err := library.ensureIndex(ctx); err != nil {
		return nil, err
	}

	return library, nil
}

func (library *ElasticLibraryManager) ensureIndex(ctx context.Context) error {
	exists, err := library.ElasticClient.IndexExists(library.IndexName).Do(ctx)
	if err != nil {
		return fmt.Errorf("check index %s: %w", library.IndexName, err)
	}

	if exists {
		return nil
	}

	_, err = library.ElasticClient.CreateIndex(library.IndexName).BodyString(booksMapping).Do(ctx)
	if err != nil {
		return fmt.Errorf("create index %s: %w", library.IndexName, err)
	}

	return nil
}

func (library *ElasticLibraryManager) pageSize() int {
	if library.PageSize <= 0 {
		return BOOKS_PAGE_SIZE
	}
	return library.PageSize
}

func (library *ElasticLibraryManager) ListBooks(ctx context.Context) ([]models.BookSummary, error) {
	summaries := make([]models.BookSummary, 0)
	pageSize := library.pageSize()

	var searchAfter []interface{}
	for {
		search := library.ElasticClient.Search().
			Index(library.IndexName).
			Query(elastic.NewMatchAllQuery()).
			Sort("created_at", true).
			Sort("book_id", true).
			Size(pageSize).
			Pretty(false)

		if searchAfter != nil {
			search = search.SearchAfter(searchAfter...)
		}

		result, err := search.Do(ctx)
		if err != nil {
			return nil, fmt.Errorf("list books: %w", err)
		}

		for _, hit := range result.Hits.Hits {
			var doc elasticBook
			if err := json.Unmarshal(hit.Source, &doc); err != nil {
				return nil, fmt.Errorf("decode book %s: %w", hit.Id, err)
			}
			summaries = append(summaries, doc.toBook(hit.Id).Summary())
		}

		if len(result.Hits.Hits) < pageSize {
			return summaries, nil
		}

		searchAfter = result.Hits.Hits[len(result.Hits.Hits)-1].Sort
		if len(searchAfter) == 0 {
			return nil, fmt.Errorf("list books: page of %d hits carries no sort values", pageSize)
		}
	}
}

func (library *ElasticLibraryManager) CreateBook(ctx context.Context, title string) (*models.Book, error) {
	if title == "" {
		return nil, &models.ValidationError{Field: "title"}
	}

	id := uuid.NewString()
	doc := elasticBook{BookId: id, Title: title, Comments: []string{}, CreatedAt: time.Now().UnixMicro()}

	indexed, err := library.ElasticClient.Index().
		Index(library.IndexName).
		Id(id).
		OpType("create").
		BodyJson(doc).
		Refresh("true").
		Do(ctx)

	if err != nil {
		return nil, fmt.Errorf("create book: %w", err)
	}

	return doc.toBook(indexed.Id), nil
}

func (library *ElasticLibraryManager) GetBookById(ctx context.Context, id string) (*models.Book, error) {
	result, err := library.ElasticClient.
		Get().
		Index(library.IndexName).
		Id(id).
		Do(ctx)

	if elastic.IsNotFound(err) {
		return nil, &models.NotFoundError{Id: id}
	}

	if err != nil {
		return nil, fmt.Errorf("get book %s: %w", id, err)
	}

	if !result.Found {
		return nil, &models.NotFoundError{Id: id}
	}

	var doc elasticBook
	if err := json.Unmarshal(result.Source, &doc); err != nil {
		return nil, fmt.Errorf("decode book %s: %w", id, err)
	}

	return doc.toBook(id), nil
}

func (library *ElasticLibraryManager) AddComment(ctx context.Context, id, comment string) (*models.Book, error) {
	if comment == "" {
		return nil, &models.ValidationError{Field: "comment"}
	}

	_, err := library.ElasticClient.
		Update().
		Index(library.IndexName).
		Id(id).
		Script(elastic.NewScript(addCommentScript).Param("comment", comment)).
		Refresh("true").
		Do(ctx)

	if elastic.IsNotFound(err) {
		return nil, &models.NotFoundError{Id: id}
	}

	if err != nil {
		return nil, fmt.Errorf("add comment to %s: %w", id, err)
	}

	return library.GetBookById(ctx, id)
}

func (library *ElasticLibraryManager) DeleteBookById(ctx context.Context, id string) error {
	_, err := library.ElasticClient.
		Delete().
		Index(library.IndexName).
		Id(id).
		Refresh("true").
		Do(ctx)

	if elastic.IsNotFound(err) {
		return &models.NotFoundError{Id: id}
	}

	if err != nil {
		return fmt.Errorf("delete book %s: %w", id, err)
	}

	return nil
}

func (library *ElasticLibraryManager) DeleteAllBooks(ctx context.Context) error {
	_, err := library.ElasticClient.
		DeleteByQuery(library.IndexName).
		Query(elastic.NewMatchAllQuery()).
		Refresh("true").
		Do(ctx)

	if err != nil && !elastic.IsNotFound(err) {
		return fmt.Errorf("delete all books: %w", err)
	}

	return nil
}

func (library *ElasticLibraryManager) Stats(ctx context.Context) (*models.LibraryStats, error) {
	results, err := library.ElasticClient.Search().
		Index(library.IndexName).
		TrackTotalHits(true).
		Aggregation("number_of_comments", elastic.NewSumAggregation().Field("comment_count")).
		Size(0).
		Do(ctx)

	if err != nil {
		return nil, fmt.Errorf("library stats: %w", err)
	}

	stats := &models.LibraryStats{NumberOfBooks: results.TotalHits()}

	numberOfComments, found := results.Aggregations.Sum("number_of_comments")
	if found && numberOfComments.Value != nil {
		stats.NumberOfComments = int64(*numberOfComments.Value)
	}

	return stats, nil
}
