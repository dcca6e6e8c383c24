package service

import (
	"aventra/internal/activity"
	"aventra/internal/config"
	"aventra/internal/mockdata"
	"aventra/internal/repository"
	"aventra/internal/storage"
)

// Externals groups the outbound dependencies of the services.
type Externals struct {
	Eventbrite EventSearcher
	Travel     TravelAPI
	Geocoder   Geocoder
	Places     PlacesAPI
	Catalog    *mockdata.Catalog
	Storage    storage.Storage
	Publisher  activity.Publisher
}

type Service struct {
	User     UserService
	Trip     TripService
	Auth     AuthService
	Wishlist WishlistService
	Post     PostService
	Comment  CommentService
	Like     LikeService
	Search   SearchService
	Hotel    HotelService
	Flight   FlightService
	Geo      GeoService
	Upload   UploadService
	Tables   TablesService
}

func NewService(rep *repository.Repository, cfg *config.Config, ext Externals) *Service {
	publisher := ext.Publisher
	if publisher == nil {
		publisher = activity.NewNopPublisher()
	}

	return &Service{
		User:     NewUserService(rep.User),
		Trip:     NewTripService(rep.Trip, rep.User),
		Auth:     NewAuthService(rep.User, cfg),
		Wishlist: NewWishlistService(rep.Wishlist, rep.User),
		Post:     NewPostService(rep.Post, rep.Comment, publisher),
		Comment:  NewCommentService(rep.Comment, rep.Post, publisher),
		Like:     NewLikeService(rep.Like, rep.Post, rep.Comment, publisher),
		Search:   NewSearchService(rep.Event, ext.Eventbrite, ext.Catalog),
		Hotel:    NewHotelService(ext.Travel, ext.Catalog),
		Flight:   NewFlightService(ext.Travel, ext.Catalog),
		Geo:      NewGeoService(ext.Geocoder, ext.Places),
		Upload:   NewUploadService(ext.Storage, cfg.Storage.MaxUploadSize),
		Tables:   NewTablesService(rep.Tables),
	}
}
