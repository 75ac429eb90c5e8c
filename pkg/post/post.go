// Package post owns the post aggregate: a post document with its
// embedded comment thread and like set, read and written as a whole.
package post

import (
	"strings"
	"time"
)

type PostId string

// Section is the closed set of comment sections. Unrecognized or
// missing input normalizes to SectionAvis.
type Section string

const (
	SectionAvis     Section = "avis"
	SectionAnalysis Section = "analysis"
	SectionDebate   Section = "debate"
	SectionQuestion Section = "question"
	SectionProposal Section = "proposal"
)

var sections = []Section{SectionAvis, SectionAnalysis, SectionDebate, SectionQuestion, SectionProposal}

func ParseSection(raw string) Section {
	s := Section(strings.ToLower(strings.TrimSpace(raw)))
	for _, known := range sections {
		if s == known {
			return s
		}
	}
	return SectionAvis
}

// Post is the persisted shape: one document per post, the full
// comment/reply tree inline.
type Post struct {
	Id        PostId    `bson:"id"`
	Title     string    `bson:"title"`
	Summary   string    `bson:"summary"`
	SourceURL string    `bson:"sourceUrl"`
	Tags      []string  `bson:"tags"`
	CreatedAt time.Time `bson:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt"`
	LikedBy   []string  `bson:"likedBy"`
	Comments  []Comment `bson:"comments"`
}

type Comment struct {
	Id         string    `bson:"id"`
	Section    Section   `bson:"section"`
	AuthorId   string    `bson:"authorId"`
	AuthorName string    `bson:"authorName"`
	Content    string    `bson:"content"`
	CreatedAt  time.Time `bson:"createdAt"`
	Replies    []Reply   `bson:"replies"`
}

type Reply struct {
	Id         string    `bson:"id"`
	ParentId   string    `bson:"parentId"`
	AuthorId   string    `bson:"authorId"`
	AuthorName string    `bson:"authorName"`
	Content    string    `bson:"content"`
	CreatedAt  time.Time `bson:"createdAt"`
}
