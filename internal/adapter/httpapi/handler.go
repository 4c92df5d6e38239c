package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/bashirmanafikhi/islamic-statuses/internal/application"
	"github.com/bashirmanafikhi/islamic-statuses/internal/domain"
	"github.com/bashirmanafikhi/islamic-statuses/pkg/response"
)

type cardView struct {
	ID              string             `json:"id"`
	Type            domain.ContentType `json:"type"`
	Quran           *quranView         `json:"quran,omitempty"`
	Hadith          *hadithView        `json:"hadith,omitempty"`
	BackgroundRef   string             `json:"backgroundRef"`
	BackgroundIndex int                `json:"backgroundIndex"`
	FontID          string             `json:"fontFamily"`
}

type quranView struct {
	AyahID      int    `json:"ayahId"`
	Text        string `json:"text"`
	AyahNumber  int    `json:"ayahNumber"`
	SurahNumber int    `json:"surahNumber"`
	VerseKey    string `json:"verseKey"`
	SurahName   string `json:"surahName"`
	SurahArabic string `json:"surahArabic"`
	Tafseer     string `json:"tafseer,omitempty"`
	Meanings    string `json:"meanings,omitempty"`
}

type hadithView struct {
	HadithID        int    `json:"hadithId"`
	ArabicText      string `json:"arabic"`
	EnglishNarrator string `json:"englishNarrator,omitempty"`
	EnglishText     string `json:"english,omitempty"`
	Title           string `json:"title,omitempty"`
	Author          string `json:"author,omitempty"`
}

type feedView struct {
	Cards                 []cardView           `json:"cards"`
	CurrentIndex          int                  `json:"currentIndex"`
	Filter                domain.ContentFilter `json:"filter"`
	TafseerMode           domain.TafseerMode   `json:"tafseerMode"`
	ShowHadithTranslation bool                 `json:"showHadithTranslation"`
}

func newCardView(c domain.Card) cardView {
	v := cardView{
		ID:              c.ID,
		Type:            c.Type,
		BackgroundRef:   c.BackgroundRef,
		BackgroundIndex: c.BackgroundIndex,
		FontID:          c.FontID,
	}
	if c.Quran != nil {
		v.Quran = &quranView{
			AyahID:      c.Quran.Verse.ID,
			Text:        c.Quran.Verse.Text,
			AyahNumber:  c.Quran.Verse.AyahNumber,
			SurahNumber: c.Quran.Verse.SurahNumber,
			VerseKey:    c.Quran.Verse.VerseKey,
			SurahName:   c.Quran.Surah.NameSimple,
			SurahArabic: c.Quran.Surah.NameArabic,
			Tafseer:     c.Quran.Verse.Tafseer,
			Meanings:    c.Quran.Verse.Meanings,
		}
	}
	if c.Hadith != nil {
		v.Hadith = &hadithView{
			HadithID:        c.Hadith.ID,
			ArabicText:      c.Hadith.ArabicText,
			EnglishNarrator: c.Hadith.EnglishNarrator,
			EnglishText:     c.Hadith.EnglishText,
			Title:           c.Hadith.Title,
			Author:          c.Hadith.Author,
		}
	}
	return v
}

func newFeedView(feed *application.Feed) feedView {
	cards := feed.Cards()
	views := make([]cardView, 0, len(cards))
	for _, c := range cards {
		views = append(views, newCardView(c))
	}
	return feedView{
		Cards:                 views,
		CurrentIndex:          feed.CurrentIndex(),
		Filter:                feed.Filter(),
		TafseerMode:           feed.TafseerMode(),
		ShowHadithTranslation: feed.ShowHadithTranslation(),
	}
}

func (s *Server) getFeed(w http.ResponseWriter, r *http.Request) {
	session, err := s.session(r)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to get session", err.Error())
		return
	}

	session.Lock()
	view := newFeedView(session.Feed)
	session.Unlock()

	response.Success(w, view, "successfully")
}

func (s *Server) resetFeed(w http.ResponseWriter, r *http.Request) {
	session, err := s.session(r)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to get session", err.Error())
		return
	}

	var req struct {
		Filter string `json:"filter"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid JSON body", err.Error())
		return
	}

	filter, ok := domain.ParseContentFilter(req.Filter)
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid filter", map[string]string{
			"filter": "must be quran, hadith or both",
		})
		return
	}

	session.Lock()
	err = session.Feed.SetFilter(filter)
	view := newFeedView(session.Feed)
	session.Unlock()
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to reset feed", err.Error())
		return
	}

	response.Success(w, view, "successfully")
}

func (s *Server) extendFeed(w http.ResponseWriter, r *http.Request) {
	session, err := s.session(r)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to get session", err.Error())
		return
	}

	session.Lock()
	err = session.Feed.Extend()
	view := newFeedView(session.Feed)
	session.Unlock()
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to extend feed", err.Error())
		return
	}

	response.Success(w, view, "successfully")
}

func (s *Server) setVisibleIndex(w http.ResponseWriter, r *http.Request) {
	session, err := s.session(r)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to get session", err.Error())
		return
	}

	var req struct {
		Index int `json:"index"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid JSON body", err.Error())
		return
	}

	session.Lock()
	session.Feed.VisibleIndexChanged(req.Index)
	index := session.Feed.CurrentIndex()
	session.Unlock()

	response.Success(w, map[string]int{"currentIndex": index}, "successfully")
}

func (s *Server) cycleTafseer(w http.ResponseWriter, r *http.Request) {
	session, err := s.session(r)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to get session", err.Error())
		return
	}

	session.Lock()
	session.Feed.CycleTafseerMode()
	mode := session.Feed.TafseerMode()
	session.Unlock()

	response.Success(w, map[string]domain.TafseerMode{"tafseerMode": mode}, "successfully")
}

func (s *Server) toggleTranslation(w http.ResponseWriter, r *http.Request) {
	session, err := s.session(r)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to get session", err.Error())
		return
	}

	session.Lock()
	session.Feed.ToggleHadithTranslation()
	show := session.Feed.ShowHadithTranslation()
	session.Unlock()

	response.Success(w, map[string]bool{"showHadithTranslation": show}, "successfully")
}

func (s *Server) cardIndex(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "index"))
}

func (s *Server) regenerateContent(w http.ResponseWriter, r *http.Request) {
	session, err := s.session(r)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to get session", err.Error())
		return
	}

	index, err := s.cardIndex(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid card index", err.Error())
		return
	}

	session.Lock()
	err = session.Feed.RegenerateContent(index)
	var view cardView
	if err == nil {
		view = newCardView(session.Feed.Cards()[index])
	}
	session.Unlock()
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Failed to regenerate content", err.Error())
		return
	}

	response.Success(w, view, "successfully")
}

func (s *Server) setBackground(w http.ResponseWriter, r *http.Request) {
	session, err := s.session(r)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to get session", err.Error())
		return
	}

	index, err := s.cardIndex(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid card index", err.Error())
		return
	}

	var req struct {
		BackgroundIndex int `json:"backgroundIndex"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid JSON body", err.Error())
		return
	}

	session.Lock()
	err = session.Feed.SetBackground(index, req.BackgroundIndex)
	var view cardView
	if err == nil {
		view = newCardView(session.Feed.Cards()[index])
	}
	session.Unlock()
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Failed to set background", err.Error())
		return
	}

	response.Success(w, view, "successfully")
}

func (s *Server) randomizeFont(w http.ResponseWriter, r *http.Request) {
	session, err := s.session(r)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to get session", err.Error())
		return
	}

	index, err := s.cardIndex(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid card index", err.Error())
		return
	}

	session.Lock()
	err = session.Feed.RandomizeFont(index)
	var view cardView
	if err == nil {
		view = newCardView(session.Feed.Cards()[index])
	}
	session.Unlock()
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Failed to randomize font", err.Error())
		return
	}

	response.Success(w, view, "successfully")
}

func (s *Server) getFavorites(w http.ResponseWriter, r *http.Request) {
	session, err := s.session(r)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to get session", err.Error())
		return
	}

	session.Lock()
	session.Favorites.Reload(r.Context())
	cards := session.Favorites.Cards()
	session.Unlock()

	views := make([]cardView, 0, len(cards))
	for _, c := range cards {
		views = append(views, newCardView(c))
	}

	response.Success(w, views, "successfully")
}

func (s *Server) toggleFavorite(w http.ResponseWriter, r *http.Request) {
	session, err := s.session(r)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to get session", err.Error())
		return
	}

	var req struct {
		Type            string `json:"type"`
		ContentID       int    `json:"contentId"`
		BackgroundIndex int    `json:"backgroundIndex"`
		FontID          string `json:"fontFamily"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid JSON body", err.Error())
		return
	}

	contentType := domain.ContentType(req.Type)
	if contentType != domain.ContentQuran && contentType != domain.ContentHadith {
		response.Error(w, http.StatusBadRequest, "Invalid content type", map[string]string{
			"type": "must be quran or hadith",
		})
		return
	}

	saved, err := session.Store.Toggle(r.Context(), contentType, req.ContentID, req.BackgroundIndex, req.FontID)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to toggle favorite", err.Error())
		return
	}

	response.Success(w, map[string]bool{"is_saved": saved}, "successfully")
}

func (s *Server) removeFavorite(w http.ResponseWriter, r *http.Request) {
	session, err := s.session(r)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to get session", err.Error())
		return
	}

	id := chi.URLParam(r, "id")
	if err := session.Favorites.Remove(r.Context(), id); err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to remove favorite", err.Error())
		return
	}

	response.Success(w, "Ok", "successfully")
}

func (s *Server) toggleAudio(w http.ResponseWriter, r *http.Request) {
	session, err := s.session(r)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to get session", err.Error())
		return
	}

	var req struct {
		Surah int `json:"surah"`
		Ayah  int `json:"ayah"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid JSON body", err.Error())
		return
	}
	if req.Surah <= 0 || req.Ayah <= 0 {
		response.Error(w, http.StatusBadRequest, "Missing required fields", map[string]string{
			"surah": "surah and ayah are required",
		})
		return
	}

	if err := session.Player.PlayOrToggle(r.Context(), req.Surah, req.Ayah); err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to toggle audio", err.Error())
		return
	}

	response.Success(w, map[string]interface{}{
		"url":     session.Player.StreamURL(req.Surah, req.Ayah),
		"playing": session.Player.IsPlaying(req.Surah, req.Ayah),
	}, "successfully")
}

func (s *Server) getSurahs(w http.ResponseWriter, r *http.Request) {
	type surahView struct {
		ID         int    `json:"id"`
		Name       string `json:"name"`
		NameArabic string `json:"nameArabic"`
		NameSimple string `json:"nameSimple"`
	}

	surahs := s.content.AllSurahs()
	views := make([]surahView, 0, len(surahs))
	for _, su := range surahs {
		views = append(views, surahView{
			ID:         su.ID,
			Name:       su.Name,
			NameArabic: su.NameArabic,
			NameSimple: su.NameSimple,
		})
	}

	response.Success(w, views, "successfully")
}

func (s *Server) getLinks(w http.ResponseWriter, r *http.Request) {
	response.Success(w, map[string]string{
		"storeUrl":       s.links.StoreURL,
		"shareMessage":   s.links.ShareMessage,
		"feedbackMailto": s.links.FeedbackMailto(),
	}, "successfully")
}
