package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"aventra/internal/activity"
	"aventra/internal/models"
	"aventra/internal/repository"
	"aventra/internal/service"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/spf13/cobra"
)

const seedPassword = "aventra123"

type SeedOptions struct {
	Users int
	Posts int
	// MaxComments caps the comments generated per post.
	MaxComments int
}

type SeedResult struct {
	Users    int
	Posts    int
	Comments int
	Likes    int
}

func newSeedCommand(open DBOpener) *cobra.Command {
	opts := SeedOptions{}
	var seed int64

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Fill the database with demo users, posts, comments and likes",
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Users < 1 {
				return fmt.Errorf("--users must be at least 1")
			}

			db, err := open()
			if err != nil {
				return err
			}
			defer db.CloseDB()

			if seed == 0 {
				seed = time.Now().UnixNano()
			}

			res, err := Seed(cmd.Context(), repository.NewRepository(db.DB), opts, gofakeit.New(seed))
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d users, %d posts, %d comments, %d likes (password %q)\n",
				res.Users, res.Posts, res.Comments, res.Likes, seedPassword)
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.Users, "users", 10, "Number of users to create")
	cmd.Flags().IntVar(&opts.Posts, "posts", 20, "Number of posts to create")
	cmd.Flags().IntVar(&opts.MaxComments, "max-comments", 4, "Maximum comments per post")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Random seed (0 picks one from the clock)")

	return cmd
}

// Seed generates demo content through the service layer so the same
// validation and hashing apply as for API requests.
func Seed(ctx context.Context, rep *repository.Repository, opts SeedOptions, faker *gofakeit.Faker) (SeedResult, error) {
	var res SeedResult
	pub := activity.NewNopPublisher()

	users := service.NewUserService(rep.User)
	posts := service.NewPostService(rep.Post, rep.Comment, pub)
	comments := service.NewCommentService(rep.Comment, rep.Post, pub)
	likes := service.NewLikeService(rep.Like, rep.Post, rep.Comment, pub)

	userIDs := make([]int64, 0, opts.Users)
	for i := 0; i < opts.Users; i++ {
		username := faker.Username()
		user, err := users.CreateUser(ctx, service.CreateUserInput{
			Username: username,
			Email:    fmt.Sprintf("%s.%d@%s", strings.ToLower(username), faker.Number(1000, 999999), faker.DomainName()),
			Password: seedPassword,
		})
		if errors.Is(err, repository.ErrConflict) {
			continue
		}
		if err != nil {
			return res, fmt.Errorf("failed to seed user: %w", err)
		}
		userIDs = append(userIDs, user.ID)
	}
	res.Users = len(userIDs)
	if len(userIDs) == 0 {
		return res, nil
	}

	pick := func() *int64 {
		id := userIDs[faker.Number(0, len(userIDs)-1)]
		return &id
	}

	for i := 0; i < opts.Posts; i++ {
		city := faker.City()
		extra, err := json.Marshal(map[string]interface{}{
			"destination": city,
			"country":     faker.Country(),
			"days":        faker.Number(2, 21),
		})
		if err != nil {
			return res, err
		}

		content := faker.Paragraph(2, 3, 12, " ")
		image := faker.ImageURL(640, 480)
		postID, err := posts.CreatePost(ctx, service.CreatePostInput{
			UserID:  pick(),
			Title:   fmt.Sprintf("%s in %s", strings.TrimSuffix(faker.Sentence(3), "."), city),
			Content: &content,
			Image:   &image,
			Extra:   extra,
		})
		if err != nil {
			return res, fmt.Errorf("failed to seed post: %w", err)
		}
		res.Posts++

		var commentIDs []int64
		for c := faker.Number(0, opts.MaxComments); c > 0; c-- {
			rating := faker.Number(1, 5)
			in := service.CreateCommentInput{
				UserID: pick(),
				Text:   faker.Sentence(faker.Number(4, 12)),
				Rating: &rating,
			}
			if len(commentIDs) > 0 && faker.Bool() {
				parent := commentIDs[faker.Number(0, len(commentIDs)-1)]
				in.ParentCommentID = &parent
				in.Rating = nil
			}

			commentID, err := comments.CreateComment(ctx, postID, in)
			if err != nil {
				return res, fmt.Errorf("failed to seed comment: %w", err)
			}
			commentIDs = append(commentIDs, commentID)
			res.Comments++
		}

		// each user likes at most one target per post
		for _, uid := range userIDs {
			if faker.Number(0, 2) != 0 {
				continue
			}

			targetType, targetID := models.TargetPost, postID
			if len(commentIDs) > 0 && faker.Bool() {
				targetType, targetID = models.TargetComment, commentIDs[faker.Number(0, len(commentIDs)-1)]
			}

			userID := uid
			if _, err := likes.Like(ctx, &userID, targetType, targetID); err != nil {
				return res, fmt.Errorf("failed to seed like: %w", err)
			}
			res.Likes++
		}
	}

	return res, nil
}
