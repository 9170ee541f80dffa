package services

import (
	"errors"

	"ubermelon/internal/repos"
)

type CartService struct {
	Sessions *repos.SessionRepo
	Catalog  *CatalogService
}

func NewCartService(sessions *repos.SessionRepo, catalog *CatalogService) *CartService {
	return &CartService{Sessions: sessions, Catalog: catalog}
}

// Add appends one unit of the melon to the session's cart. The id is
// checked against the catalog first, so an unknown id never reaches the
// cart; repeated adds of the same id each append another unit.
func (s *CartService) Add(sid string, melonID int) error {
	if _, err := s.Catalog.Get(melonID); err != nil {
		return err
	}
	return s.Sessions.AppendCartEntry(sid, melonID)
}

type CartLine struct {
	MelonID  int
	Name     string
	Qty      int
	Price    float64
	Subtotal float64
}

type CartView struct {
	Lines   []CartLine
	Total   float64
	Skipped int // entries whose melon no longer resolves
}

// View aggregates the session's cart entries into per-melon lines, in
// first-added order, priced at the current catalog price. Entries that
// no longer resolve are skipped and counted rather than failing the page.
func (s *CartService) View(sid string) (CartView, error) {
	ids, err := s.Sessions.CartMelonIDs(sid)
	if err != nil {
		return CartView{}, err
	}

	counts := map[int]int{}
	order := []int{}
	for _, id := range ids {
		if counts[id] == 0 {
			order = append(order, id)
		}
		counts[id]++
	}

	cv := CartView{Lines: []CartLine{}}
	for _, id := range order {
		m, err := s.Catalog.Get(id)
		if errors.Is(err, ErrMelonNotFound) {
			cv.Skipped += counts[id]
			continue
		}
		if err != nil {
			return CartView{}, err
		}
		qty := counts[id]
		line := CartLine{MelonID: id, Name: m.Name, Qty: qty, Price: m.Price, Subtotal: float64(qty) * m.Price}
		cv.Lines = append(cv.Lines, line)
		cv.Total += line.Subtotal
	}
	return cv, nil
}
