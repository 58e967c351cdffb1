package Services

import (
	"database/sql"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/DF-Mephisto/Rest-Forum/src/Entities"
	"github.com/DF-Mephisto/Rest-Forum/src/Errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type TopicPatch struct {
	Name *string  `json:"name"`
	Tags *[]int64 `json:"tags"`
}

func GetTopics(db *sqlx.DB, page, pageSize int) ([]Entities.Topic, error) {
	query, args, err := sq.Select("id", "name", "placed_at", "views", "user_id", "section_id").
		From("topic").
		OrderBy("placed_at DESC", "id ASC").
		Limit(uint64(pageSize)).
		Offset(uint64(page * pageSize)).
		ToSql()
	if err != nil {
		return nil, err
	}

	topics := make([]Entities.Topic, 0)
	if err := db.Select(&topics, query, args...); err != nil {
		return nil, err
	}

	if err := loadTopicTags(db, topics); err != nil {
		return nil, err
	}
	return topics, nil
}

// GetSectionTopics lists a section's topics most recently active first.
// Activity is the latest comment timestamp; topics without comments rank
// after all commented ones. Topic id breaks ties so pages are deterministic.
func GetSectionTopics(db *sqlx.DB, sectionId int64, page, pageSize int) ([]Entities.Topic, error) {
	if _, err := GetSection(db, sectionId); err != nil {
		return nil, err
	}

	query, args, err := sq.
		Select("t.id", "t.name", "t.placed_at", "t.views", "t.user_id", "t.section_id",
			"MAX(c.placed_at) AS last_reply").
		From("topic t").
		LeftJoin("comment c ON c.topic_id = t.id").
		Where(sq.Eq{"t.section_id": sectionId}).
		GroupBy("t.id", "t.name", "t.placed_at", "t.views", "t.user_id", "t.section_id").
		OrderBy("MAX(c.placed_at) IS NULL ASC", "MAX(c.placed_at) DESC", "t.id ASC").
		Limit(uint64(pageSize)).
		Offset(uint64(page * pageSize)).
		ToSql()
	if err != nil {
		return nil, err
	}

	topics := make([]Entities.Topic, 0)
	if err := db.Select(&topics, query, args...); err != nil {
		return nil, err
	}

	if err := loadTopicTags(db, topics); err != nil {
		return nil, err
	}
	return topics, nil
}

// GetTopic is a side-effecting read: the view counter is bumped with an
// atomic UPDATE before the row is fetched, so concurrent views never lose
// increments.
func GetTopic(db *sqlx.DB, id int64) (*Entities.Topic, error) {
	res, err := db.Exec("UPDATE topic SET views = views + 1 WHERE id = ?", id)
	if err != nil {
		return nil, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, Errors.NotFound(fmt.Sprintf("Topic with id %d doesn't exist", id))
	}

	return fetchTopic(db, id)
}

// fetchTopic reads a topic without touching the view counter.
func fetchTopic(db *sqlx.DB, id int64) (*Entities.Topic, error) {
	var topic Entities.Topic
	err := db.Get(&topic, "SELECT id, name, placed_at, views, user_id, section_id FROM topic WHERE id = ?", id)
	if err == sql.ErrNoRows {
		return nil, Errors.NotFound(fmt.Sprintf("Topic with id %d doesn't exist", id))
	}
	if err != nil {
		return nil, err
	}

	topics := []Entities.Topic{topic}
	if err := loadTopicTags(db, topics); err != nil {
		return nil, err
	}
	return &topics[0], nil
}

func CreateTopic(db *sqlx.DB, p Principal, topic *Entities.Topic) (*Entities.Topic, error) {
	if err := CanMutate(p, ResourceTopic, ActionCreate, nil); err != nil {
		return nil, err
	}

	if err := topic.Validate(); err != nil {
		return nil, err
	}

	if _, err := GetSection(db, topic.SectionId); err != nil {
		return nil, err
	}

	tagIds := make([]int64, 0, len(topic.Tags))
	for _, tag := range topic.Tags {
		tagIds = append(tagIds, tag.Id)
	}
	if err := checkTagsExist(db, tagIds); err != nil {
		return nil, err
	}

	tx, err := db.Beginx()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	res, err := tx.Exec("INSERT INTO topic (name, placed_at, views, user_id, section_id) VALUES (?, NOW(), 0, ?, ?)",
		topic.Name, p.Id, topic.SectionId)
	if err != nil {
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	for _, tagId := range tagIds {
		if _, err := tx.Exec("INSERT INTO topic_tag (topic_id, tag_id) VALUES (?, ?)", id, tagId); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return fetchTopic(db, id)
}

func PatchTopic(db *sqlx.DB, p Principal, id int64, patch *TopicPatch) (*Entities.Topic, error) {
	topic, err := fetchTopic(db, id)
	if err != nil {
		return nil, err
	}

	if err := CanMutate(p, ResourceTopic, ActionPatch, nil); err != nil {
		return nil, err
	}

	if patch.Name != nil {
		if strings.TrimSpace(*patch.Name) == "" {
			return nil, Errors.NotAllowed("Topic name mustn't be blank")
		}

		if utf8.RuneCountInString(*patch.Name) > 100 {
			return nil, &Errors.ValidationFailed{Violations: []string{"Topic name must be between 1 and 100 in length"}}
		}

		topic.Name = *patch.Name
	}

	if patch.Tags != nil {
		if err := checkTagsExist(db, *patch.Tags); err != nil {
			return nil, err
		}
	}

	tx, err := db.Beginx()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("UPDATE topic SET name = ? WHERE id = ?", topic.Name, id); err != nil {
		return nil, err
	}

	if patch.Tags != nil {
		if _, err := tx.Exec("DELETE FROM topic_tag WHERE topic_id = ?", id); err != nil {
			return nil, err
		}
		for _, tagId := range dedupeIds(*patch.Tags) {
			if _, err := tx.Exec("INSERT INTO topic_tag (topic_id, tag_id) VALUES (?, ?)", id, tagId); err != nil {
				return nil, err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return fetchTopic(db, id)
}

// DeleteTopic removes the topic; comments and their likes follow through the
// FK cascade.
func DeleteTopic(db *sqlx.DB, p Principal, id int64) error {
	if _, err := fetchTopic(db, id); err != nil {
		return err
	}

	if err := CanMutate(p, ResourceTopic, ActionDelete, nil); err != nil {
		return err
	}

	_, err := db.Exec("DELETE FROM topic WHERE id = ?", id)
	return err
}

func checkTagsExist(db *sqlx.DB, tagIds []int64) error {
	for _, tagId := range dedupeIds(tagIds) {
		if _, err := GetTag(db, tagId); err != nil {
			return err
		}
	}
	return nil
}

func dedupeIds(ids []int64) []int64 {
	seen := make(map[int64]bool, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

func loadTopicTags(db *sqlx.DB, topics []Entities.Topic) error {
	if len(topics) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(topics))
	for i := range topics {
		topics[i].Tags = make([]Entities.Tag, 0)
		ids = append(ids, topics[i].Id)
	}

	query, args, err := sqlx.In(
		"SELECT tt.topic_id, t.id, t.name FROM topic_tag tt JOIN tag t ON t.id = tt.tag_id WHERE tt.topic_id IN (?)", ids)
	if err != nil {
		return err
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	byId := make(map[int64]*Entities.Topic, len(topics))
	for i := range topics {
		byId[topics[i].Id] = &topics[i]
	}

	for rows.Next() {
		var topicId int64
		var tag Entities.Tag
		if err := rows.Scan(&topicId, &tag.Id, &tag.Name); err != nil {
			return err
		}
		if topic, ok := byId[topicId]; ok {
			topic.Tags = append(topic.Tags, tag)
		}
	}
	return rows.Err()
}
