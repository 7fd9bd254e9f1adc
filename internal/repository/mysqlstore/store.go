// Package mysqlstore implements repository.AuctionStore on MySQL for
// deployments that need bids to survive a restart. The DSN must include
// parseTime=true.
package mysqlstore

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"auctionhouse/internal/auctionerrors"
	model "auctionhouse/internal/models"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS auctions (
		auction_id         VARCHAR(36)  PRIMARY KEY,
		owner_id           VARCHAR(36)  NOT NULL,
		title              VARCHAR(255) NOT NULL,
		description        TEXT,
		specs              TEXT,
		budget             DECIMAL(12,2)    NULL,
		deadline           DATETIME         NULL,
		end_date           DATETIME     NOT NULL,
		status             VARCHAR(10)  NOT NULL,
		winning_bid_id     VARCHAR(36)      NULL,
		reference_file_url TEXT,
		created_at         DATETIME     NOT NULL,
		INDEX idx_auctions_status_end (status, end_date),
		INDEX idx_auctions_owner (owner_id)
	)`,
	`CREATE TABLE IF NOT EXISTS bids (
		bid_id          VARCHAR(36)   PRIMARY KEY,
		auction_id      VARCHAR(36)   NOT NULL,
		bidder_id       VARCHAR(36)   NOT NULL,
		bid_value       DECIMAL(12,2) NOT NULL,
		production_time INT           NOT NULL,
		delivery_time   INT           NOT NULL,
		comments        TEXT,
		created_at      DATETIME(6)   NOT NULL,
		INDEX idx_bids_auction (auction_id),
		INDEX idx_bids_bidder (bidder_id)
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		user_id      VARCHAR(36)  PRIMARY KEY,
		name         VARCHAR(255) NOT NULL DEFAULT '',
		company_name VARCHAR(255) NOT NULL DEFAULT ''
	)`,
}

// Store is a MySQL-backed AuctionStore.
type Store struct {
	db *sqlx.DB
}

// New connects to MySQL and bootstraps the schema.
func New(dsn string) (*Store, error) {
	db, err := sqlx.Connect("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("mysqlstore: connect: %w", err)
	}
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return nil, fmt.Errorf("mysqlstore: bootstrap schema: %w", err)
		}
	}
	return &Store{db: db}, nil
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}

type auctionRow struct {
	AuctionID        string              `db:"auction_id"`
	OwnerID          string              `db:"owner_id"`
	Title            string              `db:"title"`
	Description      sql.NullString      `db:"description"`
	Specs            sql.NullString      `db:"specs"`
	Budget           decimal.NullDecimal `db:"budget"`
	Deadline         sql.NullTime        `db:"deadline"`
	EndDate          time.Time           `db:"end_date"`
	Status           string              `db:"status"`
	WinningBidID     sql.NullString      `db:"winning_bid_id"`
	ReferenceFileURL sql.NullString      `db:"reference_file_url"`
	CreatedAt        time.Time           `db:"created_at"`
}

func (r auctionRow) toModel() (model.Auction, error) {
	a := model.Auction{
		AuctionID:        r.AuctionID,
		OwnerID:          r.OwnerID,
		Title:            r.Title,
		Description:      r.Description.String,
		Budget:           r.Budget,
		EndDate:          r.EndDate.UTC(),
		Status:           model.AuctionStatus(r.Status),
		WinningBidID:     r.WinningBidID.String,
		ReferenceFileURL: r.ReferenceFileURL.String,
		CreatedAt:        r.CreatedAt.UTC(),
	}
	if r.Deadline.Valid {
		a.Deadline = r.Deadline.Time.UTC()
	}
	if r.Specs.Valid && r.Specs.String != "" {
		if err := json.Unmarshal([]byte(r.Specs.String), &a.Specs); err != nil {
			return model.Auction{}, fmt.Errorf("decode specs for auction %s: %w", r.AuctionID, err)
		}
	}
	return a, nil
}

func auctionToRow(a model.Auction) (auctionRow, error) {
	r := auctionRow{
		AuctionID:        a.AuctionID,
		OwnerID:          a.OwnerID,
		Title:            a.Title,
		Description:      sql.NullString{String: a.Description, Valid: a.Description != ""},
		Budget:           a.Budget,
		EndDate:          a.EndDate.UTC(),
		Status:           string(a.Status),
		WinningBidID:     sql.NullString{String: a.WinningBidID, Valid: a.WinningBidID != ""},
		ReferenceFileURL: sql.NullString{String: a.ReferenceFileURL, Valid: a.ReferenceFileURL != ""},
		CreatedAt:        a.CreatedAt.UTC(),
	}
	if !a.Deadline.IsZero() {
		r.Deadline = sql.NullTime{Time: a.Deadline.UTC(), Valid: true}
	}
	if len(a.Specs) > 0 {
		raw, err := json.Marshal(a.Specs)
		if err != nil {
			return auctionRow{}, fmt.Errorf("encode specs for auction %s: %w", a.AuctionID, err)
		}
		r.Specs = sql.NullString{String: string(raw), Valid: true}
	}
	return r, nil
}

type bidRow struct {
	BidID          string          `db:"bid_id"`
	AuctionID      string          `db:"auction_id"`
	BidderID       string          `db:"bidder_id"`
	Value          decimal.Decimal `db:"bid_value"`
	ProductionTime int             `db:"production_time"`
	DeliveryTime   int             `db:"delivery_time"`
	Comments       sql.NullString  `db:"comments"`
	CreatedAt      time.Time       `db:"created_at"`
}

func (r bidRow) toModel() model.Bid {
	return model.Bid{
		BidID:          r.BidID,
		AuctionID:      r.AuctionID,
		BidderID:       r.BidderID,
		Value:          r.Value,
		ProductionTime: r.ProductionTime,
		DeliveryTime:   r.DeliveryTime,
		Comments:       r.Comments.String,
		CreatedAt:      r.CreatedAt.UTC(),
	}
}

// CreateAuction stores a new auction record.
func (s *Store) CreateAuction(a model.Auction) error {
	row, err := auctionToRow(a)
	if err != nil {
		return fmt.Errorf("mysqlstore: %w", err)
	}
	_, err = s.db.NamedExec(`INSERT INTO auctions
		(auction_id, owner_id, title, description, specs, budget, deadline, end_date, status, winning_bid_id, reference_file_url, created_at)
		VALUES (:auction_id, :owner_id, :title, :description, :specs, :budget, :deadline, :end_date, :status, :winning_bid_id, :reference_file_url, :created_at)`, row)
	if err != nil {
		return fmt.Errorf("mysqlstore: create auction %s: %w", a.AuctionID, err)
	}
	return nil
}

// GetAuction returns one auction by id.
func (s *Store) GetAuction(auctionID string) (model.Auction, error) {
	var row auctionRow
	err := s.db.Get(&row, `SELECT * FROM auctions WHERE auction_id = ?`, auctionID)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Auction{}, fmt.Errorf("mysqlstore: get auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	if err != nil {
		return model.Auction{}, fmt.Errorf("mysqlstore: get auction %s: %w", auctionID, err)
	}
	return row.toModel()
}

func (s *Store) selectAuctions(query string, args ...any) ([]model.Auction, error) {
	var rows []auctionRow
	if err := s.db.Select(&rows, query, args...); err != nil {
		return nil, err
	}
	out := make([]model.Auction, 0, len(rows))
	for _, r := range rows {
		a, err := r.toModel()
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

// OpenAuctions returns all open auctions ordered by end date ascending.
func (s *Store) OpenAuctions() ([]model.Auction, error) {
	out, err := s.selectAuctions(`SELECT * FROM auctions WHERE status = ? ORDER BY end_date ASC`, string(model.StatusOpen))
	if err != nil {
		return nil, fmt.Errorf("mysqlstore: list open auctions: %w", err)
	}
	return out, nil
}

// AuctionsByOwner returns all auctions created by one owner, newest first.
func (s *Store) AuctionsByOwner(ownerID string) ([]model.Auction, error) {
	out, err := s.selectAuctions(`SELECT * FROM auctions WHERE owner_id = ? ORDER BY created_at DESC`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("mysqlstore: list auctions for owner %s: %w", ownerID, err)
	}
	return out, nil
}

// AuctionsByIDs resolves a set of auction ids; unknown ids are skipped.
func (s *Store) AuctionsByIDs(ids []string) ([]model.Auction, error) {
	if len(ids) == 0 {
		return []model.Auction{}, nil
	}
	query, args, err := sqlx.In(`SELECT * FROM auctions WHERE auction_id IN (?)`, ids)
	if err != nil {
		return nil, fmt.Errorf("mysqlstore: resolve auctions: %w", err)
	}
	out, err := s.selectAuctions(s.db.Rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("mysqlstore: resolve auctions: %w", err)
	}
	return out, nil
}

// CreateBid appends an immutable bid record.
func (s *Store) CreateBid(bid model.Bid) error {
	row := bidRow{
		BidID:          bid.BidID,
		AuctionID:      bid.AuctionID,
		BidderID:       bid.BidderID,
		Value:          bid.Value,
		ProductionTime: bid.ProductionTime,
		DeliveryTime:   bid.DeliveryTime,
		Comments:       sql.NullString{String: bid.Comments, Valid: bid.Comments != ""},
		CreatedAt:      bid.CreatedAt.UTC(),
	}
	_, err := s.db.NamedExec(`INSERT INTO bids
		(bid_id, auction_id, bidder_id, bid_value, production_time, delivery_time, comments, created_at)
		VALUES (:bid_id, :auction_id, :bidder_id, :bid_value, :production_time, :delivery_time, :comments, :created_at)`, row)
	if err != nil {
		return fmt.Errorf("mysqlstore: create bid %s: %w", bid.BidID, err)
	}
	return nil
}

// GetBid returns one bid by id.
func (s *Store) GetBid(bidID string) (model.Bid, error) {
	var row bidRow
	err := s.db.Get(&row, `SELECT * FROM bids WHERE bid_id = ?`, bidID)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Bid{}, fmt.Errorf("mysqlstore: get bid %s: %w", bidID, auctionerrors.ErrBidNotFound)
	}
	if err != nil {
		return model.Bid{}, fmt.Errorf("mysqlstore: get bid %s: %w", bidID, err)
	}
	return row.toModel(), nil
}

// BidsByAuction returns the bids on an auction, value ascending with the
// earlier bid first on equal values.
func (s *Store) BidsByAuction(auctionID string) ([]model.Bid, error) {
	var rows []bidRow
	err := s.db.Select(&rows, `SELECT * FROM bids WHERE auction_id = ? ORDER BY bid_value ASC, created_at ASC`, auctionID)
	if err != nil {
		return nil, fmt.Errorf("mysqlstore: list bids for auction %s: %w", auctionID, err)
	}
	out := make([]model.Bid, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toModel())
	}
	return out, nil
}

// BidsByBidder returns every bid placed by one bidder, oldest first.
func (s *Store) BidsByBidder(bidderID string) ([]model.Bid, error) {
	var rows []bidRow
	err := s.db.Select(&rows, `SELECT * FROM bids WHERE bidder_id = ? ORDER BY created_at ASC`, bidderID)
	if err != nil {
		return nil, fmt.Errorf("mysqlstore: list bids for bidder %s: %w", bidderID, err)
	}
	out := make([]model.Bid, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toModel())
	}
	return out, nil
}

// CloseAuction transitions open -> closed and records the winner via a
// guarded UPDATE, so concurrent accepts cannot both succeed.
func (s *Store) CloseAuction(auctionID, winningBidID string) error {
	res, err := s.db.Exec(`UPDATE auctions SET status = ?, winning_bid_id = ? WHERE auction_id = ? AND status = ?`,
		string(model.StatusClosed), winningBidID, auctionID, string(model.StatusOpen))
	if err != nil {
		return fmt.Errorf("mysqlstore: close auction %s: %w", auctionID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("mysqlstore: close auction %s: %w", auctionID, err)
	}
	if affected == 1 {
		return nil
	}

	// Nothing updated: distinguish missing from no-longer-open.
	var status string
	err = s.db.Get(&status, `SELECT status FROM auctions WHERE auction_id = ?`, auctionID)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("mysqlstore: close auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	if err != nil {
		return fmt.Errorf("mysqlstore: close auction %s: %w", auctionID, err)
	}
	return fmt.Errorf("mysqlstore: close auction %s: status is %s: %w", auctionID, status, auctionerrors.ErrNotOpen)
}

// ExpireDue transitions every open auction past its end date to expired
// inside one transaction and returns the transitioned auctions.
func (s *Store) ExpireDue(now time.Time) ([]model.Auction, error) {
	tx, err := s.db.Beginx()
	if err != nil {
		return nil, fmt.Errorf("mysqlstore: expiry sweep: %w", err)
	}
	defer tx.Rollback()

	var rows []auctionRow
	err = tx.Select(&rows, `SELECT * FROM auctions WHERE status = ? AND end_date < ? FOR UPDATE`,
		string(model.StatusOpen), now.UTC())
	if err != nil {
		return nil, fmt.Errorf("mysqlstore: expiry sweep: %w", err)
	}
	if len(rows) == 0 {
		return []model.Auction{}, nil
	}

	_, err = tx.Exec(`UPDATE auctions SET status = ? WHERE status = ? AND end_date < ?`,
		string(model.StatusExpired), string(model.StatusOpen), now.UTC())
	if err != nil {
		return nil, fmt.Errorf("mysqlstore: expiry sweep: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("mysqlstore: expiry sweep: %w", err)
	}

	out := make([]model.Auction, 0, len(rows))
	for _, r := range rows {
		a, err := r.toModel()
		if err != nil {
			return nil, fmt.Errorf("mysqlstore: expiry sweep: %w", err)
		}
		a.Status = model.StatusExpired
		out = append(out, a)
	}
	return out, nil
}

// UsersByID resolves display metadata for a batch of user ids.
func (s *Store) UsersByID(ids []string) (map[string]model.User, error) {
	if len(ids) == 0 {
		return map[string]model.User{}, nil
	}
	query, args, err := sqlx.In(`SELECT user_id, name, company_name FROM users WHERE user_id IN (?)`, ids)
	if err != nil {
		return nil, fmt.Errorf("mysqlstore: resolve users: %w", err)
	}
	var rows []struct {
		UserID      string `db:"user_id"`
		Name        string `db:"name"`
		CompanyName string `db:"company_name"`
	}
	if err := s.db.Select(&rows, s.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("mysqlstore: resolve users: %w", err)
	}
	out := make(map[string]model.User, len(rows))
	for _, r := range rows {
		out[r.UserID] = model.User{UserID: r.UserID, Name: r.Name, CompanyName: r.CompanyName}
	}
	return out, nil
}

// SaveUser upserts a user profile, mirroring what the identity provider
// syncs into the store.
func (s *Store) SaveUser(u model.User) error {
	_, err := s.db.Exec(`INSERT INTO users (user_id, name, company_name) VALUES (?, ?, ?)
		ON DUPLICATE KEY UPDATE name = VALUES(name), company_name = VALUES(company_name)`,
		u.UserID, u.Name, u.CompanyName)
	if err != nil {
		return fmt.Errorf("mysqlstore: save user %s: %w", u.UserID, err)
	}
	return nil
}
