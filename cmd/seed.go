package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/jaswdr/faker"

	"agora/pkg/common"
	"agora/pkg/post"
	"agora/pkg/user"
)

// Fake content for local development. Not wired in production; enable
// with SEED_FAKE_DATA=1.

var (
	f              = faker.New()
	onePassForAll  = fmt.Sprintf("%x", common.HashPass("sdfsdfsdf", common.RandStringRunes(8)))
	seedSections   = []post.Section{post.SectionAvis, post.SectionAnalysis, post.SectionDebate, post.SectionQuestion, post.SectionProposal}
	seedTagChoices = []string{"politics", "economy", "science", "culture", "tech", "climate"}
)

func seed(ctx context.Context, usersRepo *user.Repo, postsRepo *post.Repo) {
	authors := createAuthors(ctx, usersRepo)

	for i := 0; i <= 5; i++ {
		if err := postsRepo.Add(ctx, genPost(authors, i)); err != nil {
			log.Fatalln("seed: can't add post:", err)
		}
	}
}

func createAuthors(ctx context.Context, usersRepo *user.Repo) []*user.User {
	authors := []*user.User{}
	for i := 0; i < 5; i++ {
		u := genUser()
		if err := usersRepo.Add(ctx, u); err != nil {
			log.Fatalln("seed: can't add user:", err)
		}
		authors = append(authors, u)
	}
	return authors
}

func genUser() *user.User {
	name := f.Person().Name()
	return &user.User{
		Id:           common.NewID(),
		Name:         name,
		Email:        strings.ToLower(f.Internet().Email()),
		PasswordHash: onePassForAll,
		CreatedAt:    common.Now(),
	}
}

func genPost(authors []*user.User, n int) *post.Post {
	now := common.Now()
	createdAt := f.Time().Time(now)
	return &post.Post{
		Id:        post.PostId(common.NewID()),
		Title:     genTitle(),
		Summary:   genText(),
		SourceURL: fmt.Sprintf("%s/%d", f.Internet().URL(), n),
		Tags:      genTags(),
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
		LikedBy:   genLikedBy(authors),
		Comments:  genComments(authors),
	}
}

func genTags() []string {
	n := rand.Intn(3)
	tags := []string{}
	for i := 0; i <= n; i++ {
		tags = append(tags, seedTagChoices[rand.Intn(len(seedTagChoices))])
	}
	return tags
}

func genLikedBy(authors []*user.User) []string {
	likedBy := []string{}
	for _, a := range authors {
		if rand.Intn(2) == 0 {
			likedBy = append(likedBy, a.Id)
		}
	}
	return likedBy
}

func genComments(authors []*user.User) []post.Comment {
	n := rand.Intn(5)
	comments := []post.Comment{}
	for i := 0; i <= n; i++ {
		author := randUser(authors)
		cmt := post.Comment{
			Id:         common.NewID(),
			Section:    seedSections[rand.Intn(len(seedSections))],
			AuthorId:   author.Id,
			AuthorName: author.Name,
			Content:    genText(),
			CreatedAt:  f.Time().Time(time.Now()),
			Replies:    []post.Reply{},
		}
		cmt.Replies = genReplies(authors, cmt.Id)
		comments = append(comments, cmt)
	}
	return comments
}

func genReplies(authors []*user.User, parentId string) []post.Reply {
	n := rand.Intn(3)
	replies := []post.Reply{}
	for i := 0; i < n; i++ {
		author := randUser(authors)
		replies = append(replies, post.Reply{
			Id:         common.NewID(),
			ParentId:   parentId,
			AuthorId:   author.Id,
			AuthorName: author.Name,
			Content:    genText(),
			CreatedAt:  f.Time().Time(time.Now()),
		})
	}
	return replies
}

func genTitle() string {
	return strings.Join(f.Lorem().Words(rand.Intn(5)+3), " ")
}

func genText() string {
	return f.Lorem().Paragraph(rand.Intn(3) + 2)
}

func randUser(users []*user.User) *user.User {
	idx := rand.Intn(len(users))
	return users[idx]
}
