package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/avilkov/travel-manager/internal/logger"
	"github.com/avilkov/travel-manager/internal/middlewares"
	"github.com/avilkov/travel-manager/internal/models"
	"github.com/avilkov/travel-manager/internal/services"
	"github.com/avilkov/travel-manager/internal/web"
)

// TravelItem is a travel list entry with its town name resolved.
type TravelItem struct {
	models.TravelDB
	TownName string
}

// TravelPage is the data for a single-travel page.
type TravelPage struct {
	Travel     *models.TravelDB
	TownName   string
	Activities []models.ActivityDB
}

// ProfilePage is the data for the profile page.
type ProfilePage struct {
	Private []TravelItem
	Public  []TravelItem
	Pending []TravelItem
}

// AdminsPage is the data for the moderation queue page.
type AdminsPage struct {
	Queue []TravelItem
	Towns []models.TownDB
}

// CommentsPage is the data for the comments page of a travel or activity.
type CommentsPage struct {
	Type             string
	SubjectID        int64
	SubjectName      string
	TravelComments   []services.TravelCommentView
	ActivityComments []services.ActivityCommentView
}

// TownGetter resolves a single town.
type TownGetter interface {
	Town(ctx context.Context, id int64) (*models.TownDB, error)
}

// resolveTownNames decorates travels with their town names.
func resolveTownNames(ctx context.Context, towns TownGetter, travels []models.TravelDB) ([]TravelItem, error) {
	items := make([]TravelItem, 0, len(travels))
	for _, t := range travels {
		town, err := towns.Town(ctx, t.Town)
		if err != nil {
			return nil, err
		}
		item := TravelItem{TravelDB: t}
		if town != nil {
			item.TownName = town.Name
		}
		items = append(items, item)
	}
	return items, nil
}

// NewIndexPageHandler renders the landing page.
func NewIndexPageHandler(rnd *web.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rnd.Render(w, http.StatusOK, "index.html", web.Page{
			User: middlewares.GetUserFromContext(r.Context()),
		})
	}
}

// NewAuthPageHandler renders a login or registration page. Already
// signed-in visitors are sent home instead.
func NewAuthPageHandler(rnd *web.Renderer, page string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if middlewares.GetUserFromContext(r.Context()) != nil {
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}
		rnd.Render(w, http.StatusOK, page, web.Page{})
	}
}

// ProfileLister gathers the three travel lists shown on the profile page.
type ProfileLister interface {
	PrivateByOwner(ctx context.Context, ownerID int64) ([]models.TravelDB, error)
	PublicByOwner(ctx context.Context, ownerID int64) ([]models.TravelDB, error)
	Town(ctx context.Context, id int64) (*models.TownDB, error)
}

// PendingLister lists a user's submissions still in the moderation queue.
type PendingLister interface {
	PendingByOwner(ctx context.Context, ownerID int64) ([]models.TravelDB, error)
}

// NewProfilePageHandler renders the profile page with the user's private,
// published and pending travels.
func NewProfilePageHandler(rnd *web.Renderer, travels ProfileLister, pending PendingLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := RequireUser(w, r)
		if !ok {
			return
		}
		ctx := r.Context()

		data := ProfilePage{}
		var err error

		if privateTravels, e := travels.PrivateByOwner(ctx, user.ID); e != nil {
			err = e
		} else if data.Private, e = resolveTownNames(ctx, travels, privateTravels); e != nil {
			err = e
		}
		if err == nil {
			if publicTravels, e := travels.PublicByOwner(ctx, user.ID); e != nil {
				err = e
			} else if data.Public, e = resolveTownNames(ctx, travels, publicTravels); e != nil {
				err = e
			}
		}
		if err == nil {
			if pendingTravels, e := pending.PendingByOwner(ctx, user.ID); e != nil {
				err = e
			} else if data.Pending, e = resolveTownNames(ctx, travels, pendingTravels); e != nil {
				err = e
			}
		}
		if err != nil {
			logger.Log.Errorw("failed to build profile page", "user_id", user.ID, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		rnd.Render(w, http.StatusOK, "profile.html", web.Page{User: user, Data: data})
	}
}

// Recommender lists public travel recommendations.
type Recommender interface {
	Recommendations(ctx context.Context, town *int64) ([]models.TravelDB, error)
	Town(ctx context.Context, id int64) (*models.TownDB, error)
}

// NewTravelsPageHandler renders the public recommendations page.
func NewTravelsPageHandler(rnd *web.Renderer, svc Recommender) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		travels, err := svc.Recommendations(ctx, nil)
		if err == nil {
			var items []TravelItem
			if items, err = resolveTownNames(ctx, svc, travels); err == nil {
				rnd.Render(w, http.StatusOK, "travels.html", web.Page{
					User: middlewares.GetUserFromContext(ctx),
					Data: items,
				})
				return
			}
		}

		logger.Log.Errorw("failed to build recommendations page", "err", err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

// TownLister lists the town catalog.
type TownLister interface {
	Towns(ctx context.Context) ([]models.TownDB, error)
}

// NewTravelNewPageHandler renders the travel submission form.
func NewTravelNewPageHandler(rnd *web.Renderer, towns TownLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := RequireUser(w, r)
		if !ok {
			return
		}

		list, err := towns.Towns(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list towns", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		rnd.Render(w, http.StatusOK, "travel_new.html", web.Page{User: user, Data: list})
	}
}

// TravelViewer applies the travel visibility rule and resolves itineraries.
type TravelViewer interface {
	Lookup(ctx context.Context, id int64, viewer *models.User) (*models.TravelDB, error)
	Town(ctx context.Context, id int64) (*models.TownDB, error)
	ResolveActivities(ctx context.Context, ids []int64) ([]models.ActivityDB, error)
}

// NewTravelViewPageHandler renders a single travel when it is visible to
// the current viewer, and a not-found page otherwise.
func NewTravelViewPageHandler(rnd *web.Renderer, svc TravelViewer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		user := middlewares.GetUserFromContext(ctx)

		id, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
		if err != nil {
			rnd.Render(w, http.StatusNotFound, "not_found.html", web.Page{User: user})
			return
		}

		travel, err := svc.Lookup(ctx, id, user)
		if err != nil {
			logger.Log.Errorw("travel lookup failed", "id", id, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		if travel == nil {
			rnd.Render(w, http.StatusNotFound, "not_found.html", web.Page{User: user})
			return
		}

		page, err := buildTravelPage(ctx, svc, travel)
		if err != nil {
			logger.Log.Errorw("failed to build travel page", "id", id, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		rnd.Render(w, http.StatusOK, "travel_view.html", web.Page{User: user, Data: page})
	}
}

func buildTravelPage(ctx context.Context, svc TravelViewer, travel *models.TravelDB) (TravelPage, error) {
	page := TravelPage{Travel: travel}

	town, err := svc.Town(ctx, travel.Town)
	if err != nil {
		return page, err
	}
	if town != nil {
		page.TownName = town.Name
	}

	page.Activities, err = svc.ResolveActivities(ctx, travel.Activities)
	return page, err
}

// CommentLister serves both comment collections for the comments page.
type CommentLister interface {
	TravelComments(ctx context.Context, travelID int64) ([]services.TravelCommentView, error)
	ActivityComments(ctx context.Context, activityID int64) ([]services.ActivityCommentView, error)
}

// CommentSubjectGetter names the travel or activity a comment page is about.
type CommentSubjectGetter interface {
	Lookup(ctx context.Context, id int64, viewer *models.User) (*models.TravelDB, error)
	Activity(ctx context.Context, id int64) (*models.ActivityDB, error)
}

// NewCommentsPageHandler renders the comments of a travel or an activity,
// selected by the type query parameter.
func NewCommentsPageHandler(rnd *web.Renderer, comments CommentLister, subjects CommentSubjectGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := RequireUser(w, r)
		if !ok {
			return
		}
		ctx := r.Context()

		id, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
		if err != nil {
			rnd.Render(w, http.StatusNotFound, "not_found.html", web.Page{User: user})
			return
		}

		page := CommentsPage{SubjectID: id, Type: r.URL.Query().Get("type")}

		switch page.Type {
		case "travel":
			travel, err := subjects.Lookup(ctx, id, user)
			if err != nil {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			if travel == nil {
				rnd.Render(w, http.StatusNotFound, "not_found.html", web.Page{User: user})
				return
			}
			page.SubjectName = travel.Name
			if page.TravelComments, err = comments.TravelComments(ctx, id); err != nil {
				logger.Log.Errorw("failed to list travel comments", "id", id, "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
		default:
			page.Type = "activity"
			activity, err := subjects.Activity(ctx, id)
			if err != nil {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			if activity == nil {
				rnd.Render(w, http.StatusNotFound, "not_found.html", web.Page{User: user})
				return
			}
			page.SubjectName = activity.Name
			if page.ActivityComments, err = comments.ActivityComments(ctx, id); err != nil {
				logger.Log.Errorw("failed to list activity comments", "id", id, "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
		}

		rnd.Render(w, http.StatusOK, "comments.html", web.Page{User: user, Data: page})
	}
}

// QueueLister serves the moderation queue pages.
type QueueLister interface {
	Queue(ctx context.Context) ([]models.TravelDB, error)
	QueueEntry(ctx context.Context, id int64) (*models.TravelDB, error)
}

// NewAdminsPageHandler renders the moderation queue with the town catalog
// management forms.
func NewAdminsPageHandler(rnd *web.Renderer, queue QueueLister, catalog TravelViewer, towns TownLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := RequireUser(w, r)
		if !ok {
			return
		}
		ctx := r.Context()

		entries, err := queue.Queue(ctx)
		if err != nil {
			logger.Log.Errorw("failed to list moderation queue", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		items, err := resolveTownNames(ctx, catalog, entries)
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		townList, err := towns.Towns(ctx)
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		rnd.Render(w, http.StatusOK, "admins.html", web.Page{
			User: user,
			Data: AdminsPage{Queue: items, Towns: townList},
		})
	}
}

// NewAdminViewPageHandler renders one queued submission for review.
func NewAdminViewPageHandler(rnd *web.Renderer, queue QueueLister, catalog TravelViewer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := RequireUser(w, r)
		if !ok {
			return
		}
		ctx := r.Context()

		id, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
		if err != nil {
			rnd.Render(w, http.StatusNotFound, "not_found.html", web.Page{User: user})
			return
		}

		travel, err := queue.QueueEntry(ctx, id)
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		if travel == nil {
			rnd.Render(w, http.StatusNotFound, "not_found.html", web.Page{User: user})
			return
		}

		page, err := buildTravelPage(ctx, catalog, travel)
		if err != nil {
			logger.Log.Errorw("failed to build admin view page", "id", id, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		rnd.Render(w, http.StatusOK, "admin_view.html", web.Page{User: user, Data: page})
	}
}
