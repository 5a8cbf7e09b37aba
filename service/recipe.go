package service

import (
	"context"
	"fmt"
	"strings"

	"Foodgram/config"
	"Foodgram/dao"
	"Foodgram/models"
	"Foodgram/pkg/errs"
	"Foodgram/pkg/hashid"
	"Foodgram/pkg/log"
	"Foodgram/pkg/snowflake"
	"Foodgram/pkg/storage"
	"Foodgram/types"

	"go.uber.org/zap"
)

var _ IRecipeService = (*RecipeService)(nil)

type IRecipeService interface {
	List(ctx context.Context, viewerID uint64, q types.RecipeQuery) (*types.Page[types.RecipeDetail], error)
	Get(ctx context.Context, viewerID, recipeID uint64) (*types.RecipeDetail, error)
	Create(ctx context.Context, authorID uint64, req *types.RecipeWriteRequest) (*types.RecipeDetail, error)
	Update(ctx context.Context, actorID, recipeID uint64, req *types.RecipeWriteRequest) (*types.RecipeDetail, error)
	Delete(ctx context.Context, actorID, recipeID uint64) error
	ShortLink(ctx context.Context, recipeID uint64) (string, error)
	ResolveShortLink(ctx context.Context, code string) (uint64, error)
}

type RecipeService struct {
	Config        *config.Config
	Tx            *dao.TxManager
	RecipeDAO     *dao.RecipeDAO
	TagDAO        *dao.TagDAO
	IngredientDAO *dao.IngredientDAO
	UserDAO       *dao.Users
	FollowDAO     *dao.UserFollowDAO
	Relations     IRelationService
	Images        storage.ImageStore
	Links         *hashid.Codec
}

func (s *RecipeService) List(ctx context.Context, viewerID uint64, q types.RecipeQuery) (*types.Page[types.RecipeDetail], error) {
	page, err := normalizePage(q.PageQuery, s.Config.Limits)
	if err != nil {
		return nil, err
	}
	filter := dao.RecipeFilter{
		AuthorID: q.Author,
		TagSlugs: q.Tags,
		Offset:   page.Offset(),
		Limit:    page.Limit,
	}
	// relation filters only mean something for a known caller
	if viewerID != 0 && q.IsFavorited {
		filter.FavoritedBy = viewerID
	}
	if viewerID != 0 && q.IsInShoppingCart {
		filter.InCartOf = viewerID
	}

	recipes, total, err := s.RecipeDAO.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	details, err := s.details(ctx, viewerID, recipes)
	if err != nil {
		return nil, err
	}
	return &types.Page[types.RecipeDetail]{Items: details, Total: total, Page: page.Page, Limit: page.Limit}, nil
}

func (s *RecipeService) Get(ctx context.Context, viewerID, recipeID uint64) (*types.RecipeDetail, error) {
	recipe, err := s.RecipeDAO.Get(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	details, err := s.details(ctx, viewerID, []*models.Recipe{recipe})
	if err != nil {
		return nil, err
	}
	return &details[0], nil
}

func (s *RecipeService) Create(ctx context.Context, authorID uint64, req *types.RecipeWriteRequest) (*types.RecipeDetail, error) {
	if err := ValidateRecipe(req, s.Config.Limits, true); err != nil {
		return nil, err
	}
	if err := s.checkReferences(ctx, req); err != nil {
		return nil, err
	}

	image, err := s.Images.Save(ctx, req.Image)
	if err != nil {
		return nil, err
	}
	recipe := &models.Recipe{
		ID:          snowflake.GenID(),
		AuthorID:    authorID,
		Name:        strings.TrimSpace(req.Name),
		Image:       image,
		Text:        req.Text,
		CookingTime: req.CookingTime,
	}
	if err := s.RecipeDAO.Save(ctx, recipe, req.Tags, lineItems(req), true); err != nil {
		s.dropImage(ctx, image)
		return nil, err
	}
	log.L.Info("recipe created", zap.Uint64("recipe_id", recipe.ID), zap.Uint64("author_id", authorID))

	return s.Get(ctx, authorID, recipe.ID)
}

// Update replaces every field, the tag set and the line items of the
// recipe. Only the author may update it.
func (s *RecipeService) Update(ctx context.Context, actorID, recipeID uint64, req *types.RecipeWriteRequest) (*types.RecipeDetail, error) {
	var (
		oldImage string
		newImage string
	)
	err := s.Tx.RunInTx(ctx, func(ctx context.Context) error {
		recipe, err := s.authored(ctx, actorID, recipeID)
		if err != nil {
			return err
		}
		if err := ValidateRecipe(req, s.Config.Limits, false); err != nil {
			return err
		}
		if err := s.checkReferences(ctx, req); err != nil {
			return err
		}

		if strings.TrimSpace(req.Image) != "" {
			if newImage, err = s.Images.Save(ctx, req.Image); err != nil {
				return err
			}
			oldImage, recipe.Image = recipe.Image, newImage
		}
		recipe.Name = strings.TrimSpace(req.Name)
		recipe.Text = req.Text
		recipe.CookingTime = req.CookingTime
		return s.RecipeDAO.Save(ctx, recipe, req.Tags, lineItems(req), false)
	})
	if err != nil {
		if newImage != "" {
			s.dropImage(ctx, newImage)
		}
		return nil, err
	}
	if oldImage != "" {
		s.dropImage(ctx, oldImage)
	}
	log.L.Info("recipe updated", zap.Uint64("recipe_id", recipeID), zap.Uint64("author_id", actorID))

	return s.Get(ctx, actorID, recipeID)
}

func (s *RecipeService) Delete(ctx context.Context, actorID, recipeID uint64) error {
	var image string
	err := s.Tx.RunInTx(ctx, func(ctx context.Context) error {
		recipe, err := s.authored(ctx, actorID, recipeID)
		if err != nil {
			return err
		}
		image = recipe.Image
		return s.RecipeDAO.Delete(ctx, recipeID)
	})
	if err != nil {
		return err
	}
	s.dropImage(ctx, image)
	log.L.Info("recipe deleted", zap.Uint64("recipe_id", recipeID), zap.Uint64("author_id", actorID))
	return nil
}

func (s *RecipeService) ShortLink(ctx context.Context, recipeID uint64) (string, error) {
	exists, err := s.RecipeDAO.Exists(ctx, recipeID)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", dao.ErrRecipeNotFound()
	}
	code, err := s.Links.Encode(recipeID)
	if err != nil {
		return "", fmt.Errorf("encode short link: %w", err)
	}
	return strings.TrimRight(s.Config.ShortLink.BaseURL, "/") + "/s/" + code, nil
}

func (s *RecipeService) ResolveShortLink(ctx context.Context, code string) (uint64, error) {
	id, err := s.Links.Decode(code)
	if err != nil {
		return 0, dao.ErrRecipeNotFound()
	}
	exists, err := s.RecipeDAO.Exists(ctx, id)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, dao.ErrRecipeNotFound()
	}
	return id, nil
}

// authored loads the recipe and checks that actorID wrote it.
func (s *RecipeService) authored(ctx context.Context, actorID, recipeID uint64) (*models.Recipe, error) {
	recipe, err := s.RecipeDAO.Get(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	if recipe.AuthorID != actorID {
		return nil, errs.Forbidden(errs.CodeNotAuthor, "only the author can change this recipe")
	}
	return recipe, nil
}

// checkReferences makes sure every tag and ingredient id exists. Tags are
// never created here.
func (s *RecipeService) checkReferences(ctx context.Context, req *types.RecipeWriteRequest) error {
	missing, err := s.TagDAO.MissingIDs(ctx, req.Tags)
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		return errs.InvalidField("tags", errs.CodeTagsNotFound, fmt.Sprintf("tags do not exist: %v", missing))
	}

	ids := make([]uint64, 0, len(req.Ingredients))
	for _, item := range req.Ingredients {
		ids = append(ids, item.ID)
	}
	missing, err = s.IngredientDAO.MissingIDs(ctx, ids)
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		return errs.InvalidField("ingredients", errs.CodeIngredientsNotFound, fmt.Sprintf("ingredients do not exist: %v", missing))
	}
	return nil
}

func (s *RecipeService) dropImage(ctx context.Context, ref string) {
	if err := s.Images.Delete(context.WithoutCancel(ctx), ref); err != nil {
		log.L.Warn("remove image failed", zap.String("image", ref), zap.Error(err))
	}
}

// details assembles read models for recipes, keeping their order.
func (s *RecipeService) details(ctx context.Context, viewerID uint64, recipes []*models.Recipe) ([]types.RecipeDetail, error) {
	result := make([]types.RecipeDetail, 0, len(recipes))
	if len(recipes) == 0 {
		return result, nil
	}

	ids := make([]uint64, 0, len(recipes))
	authorIDs := make([]uint64, 0, len(recipes))
	for _, r := range recipes {
		ids = append(ids, r.ID)
		authorIDs = append(authorIDs, r.AuthorID)
	}

	tagRows, err := s.RecipeDAO.TagsOf(ctx, ids)
	if err != nil {
		return nil, err
	}
	tags := make(map[uint64][]types.Tag, len(ids))
	for _, t := range tagRows {
		tags[t.RecipeID] = append(tags[t.RecipeID], types.Tag{ID: t.ID, Name: t.Name, Slug: t.Slug})
	}

	lineRows, err := s.RecipeDAO.IngredientsOf(ctx, ids)
	if err != nil {
		return nil, err
	}
	lines := make(map[uint64][]types.RecipeIngredient, len(ids))
	for _, l := range lineRows {
		lines[l.RecipeID] = append(lines[l.RecipeID], types.RecipeIngredient{
			ID:              l.IngredientID,
			Name:            l.Name,
			MeasurementUnit: l.MeasurementUnit,
			Amount:          int(l.Amount),
		})
	}

	authors, err := s.UserDAO.FindByIDs(ctx, authorIDs)
	if err != nil {
		return nil, err
	}
	authorByID := make(map[uint64]*models.User, len(authors))
	for _, a := range authors {
		authorByID[a.ID] = a
	}
	following, err := s.FollowDAO.FollowingIDs(ctx, viewerID, authorIDs)
	if err != nil {
		return nil, err
	}

	favorited, err := s.Relations.Status(ctx, viewerID, models.RelationFavorite, ids)
	if err != nil {
		return nil, err
	}
	inCart, err := s.Relations.Status(ctx, viewerID, models.RelationShoppingCart, ids)
	if err != nil {
		return nil, err
	}

	for _, r := range recipes {
		author := types.UserProfile{ID: r.AuthorID}
		if a, ok := authorByID[r.AuthorID]; ok {
			author = toProfile(a, following[a.ID])
		}
		recipeTags := tags[r.ID]
		if recipeTags == nil {
			recipeTags = []types.Tag{}
		}
		recipeLines := lines[r.ID]
		if recipeLines == nil {
			recipeLines = []types.RecipeIngredient{}
		}
		result = append(result, types.RecipeDetail{
			ID:               r.ID,
			Tags:             recipeTags,
			Author:           author,
			Ingredients:      recipeLines,
			IsFavorited:      favorited[r.ID],
			IsInShoppingCart: inCart[r.ID],
			Name:             r.Name,
			Image:            r.Image,
			Text:             r.Text,
			CookingTime:      r.CookingTime,
			CreatedAt:        r.CreatedAt,
		})
	}
	return result, nil
}

func lineItems(req *types.RecipeWriteRequest) []models.RecipeIngredient {
	items := make([]models.RecipeIngredient, 0, len(req.Ingredients))
	for _, item := range req.Ingredients {
		items = append(items, models.RecipeIngredient{IngredientID: item.ID, Amount: item.Amount})
	}
	return items
}
