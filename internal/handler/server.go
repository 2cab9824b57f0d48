// Package handler implements the HTTP handlers for the Iterary API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (planner.go, trip.go, etc.) but all share the same Server struct so
// they can access its dependencies.
package handler

import (
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/iterary/backend/internal/domain"
	"github.com/iterary/backend/internal/poi"
	"github.com/iterary/backend/internal/service"
)

// The *Servicer interfaces define the business operations each handler
// depends on. Defining them here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.

// PlannerServicer is the trip-planner dependency.
type PlannerServicer interface {
	PlanTrip(ctx context.Context, query string) (service.Plan, error)
	CityActivities(ctx context.Context, city string, durationDays, limit int, provider string) ([]poi.Activity, error)
}

// TripServicer is the trip CRUD dependency.
type TripServicer interface {
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error)
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// UserServicer is the user CRUD dependency.
type UserServicer interface {
	Create(ctx context.Context, user domain.User) (domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}

// MemberServicer is the trip membership dependency.
type MemberServicer interface {
	Invite(ctx context.Context, member domain.TripMember) (domain.TripMember, error)
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.TripMember, error)
	Respond(ctx context.Context, tripID, userID uuid.UUID, status domain.MemberStatus) (domain.TripMember, error)
	Remove(ctx context.Context, tripID, userID uuid.UUID) error
}

// ActivityServicer is the itinerary activity dependency.
type ActivityServicer interface {
	Create(ctx context.Context, activity domain.Activity) (domain.Activity, error)
	GetByID(ctx context.Context, tripID, activityID uuid.UUID) (domain.Activity, error)
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error)
	Update(ctx context.Context, activity domain.Activity) (domain.Activity, error)
	Delete(ctx context.Context, tripID, activityID uuid.UUID) error
}

// ExpenseServicer is the shared-expense dependency.
type ExpenseServicer interface {
	Create(ctx context.Context, expense domain.Expense) (domain.Expense, error)
	GetByID(ctx context.Context, tripID, expenseID uuid.UUID) (domain.Expense, error)
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Expense, error)
	Delete(ctx context.Context, tripID, expenseID uuid.UUID) error
	Balances(ctx context.Context, tripID uuid.UUID) ([]domain.Balance, error)
}

// MessageServicer is the trip chat dependency.
type MessageServicer interface {
	Post(ctx context.Context, msg domain.Message) (domain.Message, error)
	ListByTrip(ctx context.Context, tripID uuid.UUID, p domain.PaginationParams) ([]domain.Message, int64, error)
	Delete(ctx context.Context, tripID, messageID uuid.UUID) error
}

// Server holds all handler dependencies. Wire it in main.go via Routes().
type Server struct {
	planner    PlannerServicer
	trips      TripServicer
	users      UserServicer
	members    MemberServicer
	activities ActivityServicer
	expenses   ExpenseServicer
	messages   MessageServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(
	planner PlannerServicer,
	trips TripServicer,
	users UserServicer,
	members MemberServicer,
	activities ActivityServicer,
	expenses ExpenseServicer,
	messages MessageServicer,
) *Server {
	return &Server{
		planner:    planner,
		trips:      trips,
		users:      users,
		members:    members,
		activities: activities,
		expenses:   expenses,
		messages:   messages,
	}
}

// Routes mounts every endpoint on a fresh chi router.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)

	r.Route("/api", func(r chi.Router) {
		r.Route("/trip-planner", func(r chi.Router) {
			r.Post("/plan", s.PlanTrip)
			r.Get("/activities/{city}", s.GetCityActivities)
		})

		r.Route("/users", func(r chi.Router) {
			r.Post("/", s.CreateUser)
			r.Get("/", s.ListUsers)
			r.Get("/{userID}", s.GetUser)
		})

		r.Route("/trips", func(r chi.Router) {
			r.Post("/", s.CreateTrip)
			r.Get("/", s.ListTrips)

			r.Route("/{tripID}", func(r chi.Router) {
				r.Get("/", s.GetTrip)
				r.Put("/", s.UpdateTrip)
				r.Delete("/", s.DeleteTrip)

				r.Route("/members", func(r chi.Router) {
					r.Post("/", s.InviteMember)
					r.Get("/", s.ListMembers)
					r.Put("/{userID}", s.RespondMember)
					r.Delete("/{userID}", s.RemoveMember)
				})

				r.Route("/activities", func(r chi.Router) {
					r.Post("/", s.CreateActivity)
					r.Get("/", s.ListActivities)
					r.Get("/{activityID}", s.GetActivity)
					r.Put("/{activityID}", s.UpdateActivity)
					r.Delete("/{activityID}", s.DeleteActivity)
				})

				r.Route("/expenses", func(r chi.Router) {
					r.Post("/", s.CreateExpense)
					r.Get("/", s.ListExpenses)
					r.Get("/balances", s.GetBalances)
					r.Get("/{expenseID}", s.GetExpense)
					r.Delete("/{expenseID}", s.DeleteExpense)
				})

				r.Route("/messages", func(r chi.Router) {
					r.Post("/", s.PostMessage)
					r.Get("/", s.ListMessages)
					r.Delete("/{messageID}", s.DeleteMessage)
				})
			})
		})
	})

	return r
}
