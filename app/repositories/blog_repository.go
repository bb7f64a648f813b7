package repositories

import (
	"fmt"
	"sort"
	"time"

	"codenix/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerBlogRepository implements BlogRepository using BadgerDB. Posts are
// stored as JSON documents under "blog:<id>"; a "slug:<slug>" index key
// maps each slug to its post id and is maintained in the same transaction
// as the document, which is what enforces slug uniqueness.
type BadgerBlogRepository struct {
	db *badger.DB
}

// NewBadgerBlogRepository creates a new BadgerBlogRepository.
func NewBadgerBlogRepository(db *badger.DB) *BadgerBlogRepository {
	return &BadgerBlogRepository{db: db}
}

// Open opens (or initializes) a Badger store at the given path.
func Open(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithLogger(nil).
		WithNumVersionsToKeep(1)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger db at %s: %w", path, err)
	}
	return db, nil
}

// Create persists a new post, assigning its id and timestamps.
func (r *BadgerBlogRepository) Create(post *models.BlogPost) error {
	id, err := NewID()
	if err != nil {
		return err
	}
	post.ID = id
	post.BeforeCreate()

	data, err := marshalEntity(post)
	if err != nil {
		return err
	}

	return r.db.Update(func(txn *badger.Txn) error {
		// The slug index lookup and both writes share one transaction,
		// so two concurrent creates with the same slug cannot both win.
		_, err := txn.Get(slugKey(post.Slug))
		if err == nil {
			return ErrSlugTaken
		}
		if err != badger.ErrKeyNotFound {
			return err
		}
		if err := txn.Set(slugKey(post.Slug), []byte(post.ID)); err != nil {
			return err
		}
		return txn.Set(blogKey(post.ID), data)
	})
}

// GetByID retrieves a post by id.
func (r *BadgerBlogRepository) GetByID(id string) (*models.BlogPost, error) {
	if !ValidID(id) {
		return nil, ErrInvalidID
	}

	var post models.BlogPost
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(blogKey(id))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return unmarshalEntity(val, &post)
		})
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// GetBySlug retrieves a post by its slug via the slug index.
func (r *BadgerBlogRepository) GetBySlug(slug string) (*models.BlogPost, error) {
	var post models.BlogPost
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(slugKey(slug))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		var id string
		if err := item.Value(func(val []byte) error {
			id = string(val)
			return nil
		}); err != nil {
			return err
		}

		item, err = txn.Get(blogKey(id))
		if err == badger.ErrKeyNotFound {
			// Dangling index entry; treat as absent.
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return unmarshalEntity(val, &post)
		})
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Update applies a partial update to an existing post.
func (r *BadgerBlogRepository) Update(id string, changes *models.BlogUpdate) (*models.BlogPost, error) {
	if !ValidID(id) {
		return nil, ErrInvalidID
	}

	var post models.BlogPost
	err := r.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(blogKey(id))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		if err := item.Value(func(val []byte) error {
			return unmarshalEntity(val, &post)
		}); err != nil {
			return err
		}

		oldSlug := post.Slug
		if changes.Slug != nil && *changes.Slug != oldSlug {
			existing, err := txn.Get(slugKey(*changes.Slug))
			if err == nil {
				taken := true
				// A slug entry pointing at this very post is not a
				// conflict.
				_ = existing.Value(func(val []byte) error {
					taken = string(val) != id
					return nil
				})
				if taken {
					return ErrSlugTaken
				}
			} else if err != badger.ErrKeyNotFound {
				return err
			}
		}

		changes.Apply(&post)
		post.UpdatedAt = time.Now()

		data, err := marshalEntity(&post)
		if err != nil {
			return err
		}
		if post.Slug != oldSlug {
			if err := txn.Delete(slugKey(oldSlug)); err != nil {
				return err
			}
			if err := txn.Set(slugKey(post.Slug), []byte(id)); err != nil {
				return err
			}
		}
		return txn.Set(blogKey(id), data)
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Delete removes a post and its slug index entry, returning the removed
// document.
func (r *BadgerBlogRepository) Delete(id string) (*models.BlogPost, error) {
	if !ValidID(id) {
		return nil, ErrInvalidID
	}

	var post models.BlogPost
	err := r.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(blogKey(id))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		if err := item.Value(func(val []byte) error {
			return unmarshalEntity(val, &post)
		}); err != nil {
			return err
		}
		if err := txn.Delete(slugKey(post.Slug)); err != nil {
			return err
		}
		return txn.Delete(blogKey(id))
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Query scans the collection, applies the filter, sorts newest first and
// returns one page plus the total number of matches.
func (r *BadgerBlogRepository) Query(filter Filter, skip, limit int) ([]*models.BlogPost, int, error) {
	matched, err := r.scan(filter)
	if err != nil {
		return nil, 0, err
	}
	SortNewestFirst(matched)
	return Paginate(matched, skip, limit), len(matched), nil
}

// Distinct returns the sorted set of unique values of the field.
func (r *BadgerBlogRepository) Distinct(field Field) ([]string, error) {
	posts, err := r.scan(Filter{})
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	for _, post := range posts {
		for _, v := range fieldValues(post, field) {
			seen[v] = struct{}{}
		}
	}
	values := make([]string, 0, len(seen))
	for v := range seen {
		values = append(values, v)
	}
	sort.Strings(values)
	return values, nil
}

// CountBy returns the topN most frequent values of the field.
func (r *BadgerBlogRepository) CountBy(field Field, topN int) ([]ValueCount, error) {
	posts, err := r.scan(Filter{})
	if err != nil {
		return nil, err
	}
	return TopCounts(posts, field, topN), nil
}

// scan reads every document matching the filter. The collection is small
// (a marketing-site blog), so a full prefix scan is the storage-level
// equivalent of the unindexed regex queries this API promises.
func (r *BadgerBlogRepository) scan(filter Filter) ([]*models.BlogPost, error) {
	var posts []*models.BlogPost
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(BlogKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var post models.BlogPost
			err := item.Value(func(val []byte) error {
				return unmarshalEntity(val, &post)
			})
			if err != nil {
				return fmt.Errorf("failed to unmarshal post: %v", err)
			}
			if filter.Matches(&post) {
				posts = append(posts, &post)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// fieldValues extracts the groupable values of a field from a post.
func fieldValues(p *models.BlogPost, field Field) []string {
	switch field {
	case FieldCategory:
		return []string{p.Category}
	case FieldTags:
		return p.Tags
	case FieldAuthor:
		return []string{p.Author.Name}
	default:
		return nil
	}
}

// TopCounts tallies field values across posts and returns the topN by
// occurrence count, ties broken alphabetically.
func TopCounts(posts []*models.BlogPost, field Field, topN int) []ValueCount {
	counts := make(map[string]int)
	for _, post := range posts {
		for _, v := range fieldValues(post, field) {
			counts[v]++
		}
	}
	result := make([]ValueCount, 0, len(counts))
	for v, c := range counts {
		result = append(result, ValueCount{Value: v, Count: c})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Value < result[j].Value
	})
	if topN > 0 && len(result) > topN {
		result = result[:topN]
	}
	return result
}
