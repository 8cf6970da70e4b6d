package memory

import (
	"time"

	"github.com/razoraze123/flux/internal/client"
	"github.com/razoraze123/flux/internal/debt"
	"github.com/razoraze123/flux/internal/finance"
	"github.com/razoraze123/flux/internal/invoice"
	"github.com/razoraze123/flux/internal/recurring"
)

const sampleDocumentURL = "https://drive.google.com/file/d/1yc39orlQY_9BXpje-9Ip3sBb7-2zkXB1/view?usp=drive_link"

// DefaultSeed returns the sample dataset the app ships with: a handful of
// small-merchant clients, micro transactions, invoices, neighborhood debts
// and household recurring charges.
func DefaultSeed() Data {
	return Data{
		Clients: []client.Client{
			{ID: "1", Name: "Boutique Salam", Email: "salam.boutique@gmail.com", Phone: "90 12 34 56", Company: "Commerce Général", Status: client.StatusActive, Address: "Quartier Plateau", City: "Niamey", Zip: "BP 12"},
			{ID: "2", Name: "Moussa Taxi", Email: "moussa.transport@yahoo.fr", Phone: "99 88 77 66", Company: "Transport", Status: client.StatusActive, Address: "Gare Wadata", City: "Niamey"},
			{ID: "3", Name: "Sarah Coiffure", Email: "sarah.style@hotmail.com", Phone: "80 20 30 40", Company: "Salon de Beauté", Status: client.StatusActive, Address: "Avenue Mali Béro", City: "Niamey", Zip: "1000"},
			{ID: "4", Name: "Ali Cyber", Email: "ali.cyber@gmail.com", Phone: "92 00 11 22", Company: "Services Informatiques", Status: client.StatusPending, Address: "Face Stade", City: "Niamey"},
			{ID: "5", Name: "Tanty Cuisine", Email: "tanty.repas@gmail.com", Phone: "98 76 54 32", Company: "Restauration", Status: client.StatusActive, Address: "Petit Marché", City: "Niamey"},
		},
		Transactions: []finance.Transaction{
			{ID: "101", Type: finance.TypeExpense, Amount: 1500, Description: "Sandwich & Café", Category: "Repas", Date: date("2023-10-25")},
			{ID: "102", Type: finance.TypeExpense, Amount: 2000, Description: "Course Taxi Centre", Category: "Transport", Date: date("2023-10-24")},
			{ID: "103", Type: finance.TypeIncome, Amount: 5000, Description: "Vente T-shirt", Category: "Vente", Date: date("2023-10-22"), ClientID: "1"},
			{ID: "104", Type: finance.TypeExpense, Amount: 10000, Description: "Réparation Ventilateur", Category: "Maintenance", Date: date("2023-10-20")},
			{ID: "105", Type: finance.TypeIncome, Amount: 15000, Description: "Dépannage Windows", Category: "Prestation", Date: date("2023-10-18"), ClientID: "4"},
			{ID: "106", Type: finance.TypeExpense, Amount: 5000, Description: "Forfait Internet Mois", Category: "Internet", Date: date("2023-10-15")},
			{ID: "107", Type: finance.TypeExpense, Amount: 2000, Description: "Achat Crédit Appel", Category: "Autre", Date: date("2023-10-01")},
			{ID: "108", Type: finance.TypeIncome, Amount: 12000, Description: "Vente Accessoires", Category: "Vente", Date: date("2023-10-05"), ClientID: "3"},
			{ID: "109", Type: finance.TypeExpense, Amount: 500, Description: "Eau Minérale", Category: "Repas", Date: date("2023-10-26")},
			{ID: "110", Type: finance.TypeIncome, Amount: 8000, Description: "Remboursement Prêt", Category: "Autre", Date: date("2023-10-27")},
		},
		Invoices: []invoice.Invoice{
			{ID: "inv-001", Number: "FAC-001", Type: invoice.TypeInvoice, Client: "Boutique Salam", Date: date("2023-10-25"), Amount: 15000, Status: invoice.StatusPaid, DocumentURL: sampleDocumentURL},
			{ID: "quo-001", Number: "DEV-001", Type: invoice.TypeQuote, Client: "Moussa Taxi", Date: date("2023-10-24"), Amount: 5000, Status: invoice.StatusPending, DocumentURL: sampleDocumentURL},
			{ID: "inv-002", Number: "FAC-002", Type: invoice.TypeInvoice, Client: "Sarah Coiffure", Date: date("2023-10-20"), Amount: 8500, Status: invoice.StatusSent, DocumentURL: sampleDocumentURL},
			{ID: "quo-002", Number: "DEV-002", Type: invoice.TypeQuote, Client: "Ali Cyber", Date: date("2023-10-18"), Amount: 20000, Status: invoice.StatusDraft, DocumentURL: sampleDocumentURL},
			{ID: "inv-003", Number: "FAC-003", Type: invoice.TypeInvoice, Client: "Tanty Cuisine", Date: date("2023-10-15"), Amount: 12000, Status: invoice.StatusPaid, DocumentURL: sampleDocumentURL},
		},
		Debts: []debt.Debt{
			{ID: "d1", Type: debt.TypeReceivable, Person: "Jean le Voisin", Amount: 2000, DueDate: date("2023-11-15"), Phone: "90000001", Reason: "Dépannage essence"},
			{ID: "d2", Type: debt.TypePayable, Person: "Boutiquier du coin", Amount: 1500, DueDate: date("2023-11-10"), Phone: "90000002", Reason: "Pain et Lait"},
			{ID: "d3", Type: debt.TypeReceivable, Person: "Cousine Amina", Amount: 5000, DueDate: date("2023-11-05"), Phone: "90000003", Reason: "Achat Tissu"},
			{ID: "d4", Type: debt.TypePayable, Person: "Resto la Paix", Amount: 3000, DueDate: date("2023-11-01"), Phone: "90000004", Reason: "Déjeuner crédit"},
			{ID: "d5", Type: debt.TypeReceivable, Person: "Collègue Paul", Amount: 10000, DueDate: date("2023-11-20"), Phone: "90000005", Reason: "Avance fin de mois"},
		},
		Recurring: []recurring.Charge{
			{ID: "r1", Name: "Abonnement Netflix", Amount: 4500, Frequency: recurring.FrequencyMonthly, NextDate: date("2023-11-01"), Category: "Divertissement", Active: true},
			{ID: "r2", Name: "Forfait Appel", Amount: 2000, Frequency: recurring.FrequencyWeekly, NextDate: date("2023-11-05"), Category: "Internet", Active: true},
			{ID: "r3", Name: "Salle de Sport", Amount: 10000, Frequency: recurring.FrequencyMonthly, NextDate: date("2023-11-10"), Category: "Autre", Active: true},
			{ID: "r4", Name: "Cotisation Tontine", Amount: 5000, Frequency: recurring.FrequencyWeekly, NextDate: date("2023-11-08"), Category: "Épargne", Active: true},
			{ID: "r5", Name: "Facture Eau", Amount: 3500, Frequency: recurring.FrequencyMonthly, NextDate: date("2023-11-15"), Category: "Eau", Active: true},
		},
	}
}

func date(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}

	return t
}
