package handlers

import "net/http"

type TablesResponse struct {
	CountTables int `json:"count_tables"`
}

func (h *Handlers) CountTables(w http.ResponseWriter, r *http.Request) {
	count, err := h.TablesService.CountTables(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, TablesResponse{CountTables: count}, http.StatusOK)
}
