package i18n

// texts maps locale → key → text. Keys are grouped by prefix:
// domain.*, self.*, check.<domain>.<difficulty>.*, goal.*, phase.*,
// workload.*, checkpoint.*, feasibility.*, strategy.*, ui.*.
var texts = map[Locale]map[string]string{
	LocaleEN: {
		"domain.reading":    "Reading comprehension",
		"domain.logic":      "Logical reasoning",
		"domain.spatial":    "Drawing & spatial reasoning",
		"domain.math":       "Mathematics",
		"domain.physics":    "Physics",
		"domain.humanities": "History & humanities",

		"self.prompt":   "How confident do you feel about %s?",
		"self.option.1": "Not confident at all",
		"self.option.2": "A little confident",
		"self.option.3": "Somewhat confident",
		"self.option.4": "Quite confident",
		"self.option.5": "Very confident",

		"check.reading.easy.prompt":   "\"The committee postponed the vote.\" What happened to the vote?",
		"check.reading.easy.a":        "It was cancelled",
		"check.reading.easy.b":        "It was delayed",
		"check.reading.easy.c":        "It was held early",
		"check.reading.easy.d":        "It was repeated",
		"check.reading.medium.prompt": "\"Few critics praised the building, yet it became a landmark.\" Which inference is supported?",
		"check.reading.medium.a":      "Most critics praised it",
		"check.reading.medium.b":      "Critics designed the building",
		"check.reading.medium.c":      "Public appreciation differed from critical opinion",
		"check.reading.medium.d":      "The building was demolished",
		"check.reading.hard.prompt":   "\"The architect's restraint was itself a statement.\" The author most likely means that:",
		"check.reading.hard.a":        "Simplicity expressed a deliberate position",
		"check.reading.hard.b":        "The architect lacked ideas",
		"check.reading.hard.c":        "The building was unfinished",
		"check.reading.hard.d":        "Statements were carved on the facade",

		"check.logic.easy.prompt":   "All bricks are blocks. This is a brick. Therefore:",
		"check.logic.easy.a":        "All blocks are bricks",
		"check.logic.easy.b":        "It is not a block",
		"check.logic.easy.c":        "Nothing follows",
		"check.logic.easy.d":        "It is a block",
		"check.logic.medium.prompt": "Which number comes next: 2, 6, 12, 20, 30, ?",
		"check.logic.medium.a":      "40",
		"check.logic.medium.b":      "42",
		"check.logic.medium.c":      "36",
		"check.logic.medium.d":      "44",
		"check.logic.hard.prompt":   "No domes are flat and some roofs are domes. Which must be true?",
		"check.logic.hard.a":        "No roofs are flat",
		"check.logic.hard.b":        "All domes are roofs",
		"check.logic.hard.c":        "Some roofs are not flat",
		"check.logic.hard.d":        "Some flat things are domes",

		"check.spatial.easy.prompt":   "How many faces does a cube have?",
		"check.spatial.easy.a":        "6",
		"check.spatial.easy.b":        "4",
		"check.spatial.easy.c":        "8",
		"check.spatial.easy.d":        "12",
		"check.spatial.medium.prompt": "A square sheet is folded in half twice and punched once away from the folds. How many holes appear when it is unfolded?",
		"check.spatial.medium.a":      "1",
		"check.spatial.medium.b":      "2",
		"check.spatial.medium.c":      "8",
		"check.spatial.medium.d":      "4",
		"check.spatial.hard.prompt":   "How many edges does a triangular prism have?",
		"check.spatial.hard.a":        "6",
		"check.spatial.hard.b":        "9",
		"check.spatial.hard.c":        "12",
		"check.spatial.hard.d":        "8",

		"check.math.easy.prompt":   "Solve 3x + 4 = 19.",
		"check.math.easy.a":        "x = 5",
		"check.math.easy.b":        "x = 6",
		"check.math.easy.c":        "x = 7",
		"check.math.easy.d":        "x = 15",
		"check.math.medium.prompt": "What is log10(0.001)?",
		"check.math.medium.a":      "3",
		"check.math.medium.b":      "-2",
		"check.math.medium.c":      "-3",
		"check.math.medium.d":      "0.001",
		"check.math.hard.prompt":   "How many real solutions does x^2 - 4|x| + 3 = 0 have?",
		"check.math.hard.a":        "2",
		"check.math.hard.b":        "3",
		"check.math.hard.c":        "0",
		"check.math.hard.d":        "4",

		"check.physics.easy.prompt":   "What is the SI unit of force?",
		"check.physics.easy.a":        "Newton",
		"check.physics.easy.b":        "Joule",
		"check.physics.easy.c":        "Watt",
		"check.physics.easy.d":        "Pascal",
		"check.physics.medium.prompt": "An object falls from rest for 2 s (g = 10 m/s^2). What is its speed?",
		"check.physics.medium.a":      "10 m/s",
		"check.physics.medium.b":      "20 m/s",
		"check.physics.medium.c":      "40 m/s",
		"check.physics.medium.d":      "5 m/s",
		"check.physics.hard.prompt":   "Two 6 ohm resistors in parallel are connected in series with a 3 ohm resistor. What is the total resistance?",
		"check.physics.hard.a":        "15 ohm",
		"check.physics.hard.b":        "9 ohm",
		"check.physics.hard.c":        "6 ohm",
		"check.physics.hard.d":        "4 ohm",

		"check.humanities.easy.prompt":   "Who painted the ceiling of the Sistine Chapel?",
		"check.humanities.easy.a":        "Raphael",
		"check.humanities.easy.b":        "Michelangelo",
		"check.humanities.easy.c":        "Giotto",
		"check.humanities.easy.d":        "Caravaggio",
		"check.humanities.medium.prompt": "In which era was the Pantheon in Rome built?",
		"check.humanities.medium.a":      "Roman Empire",
		"check.humanities.medium.b":      "Renaissance",
		"check.humanities.medium.c":      "Baroque",
		"check.humanities.medium.d":      "Middle Ages",
		"check.humanities.hard.prompt":   "Le Corbusier's \"Five Points of Architecture\" belong to which movement?",
		"check.humanities.hard.a":        "Gothic Revival",
		"check.humanities.hard.b":        "Art Nouveau",
		"check.humanities.hard.c":        "Neoclassicism",
		"check.humanities.hard.d":        "Modernism",

		"goal.foundation": "Build foundations in %s",
		"goal.practice":   "Practise and consolidate %s",
		"goal.review":     "Review %s and rehearse under timed conditions",
		"goal.open":       "Mixed review and practice tests",
		"goal.and":        " and ",

		"phase.foundation": "Foundation",
		"phase.practice":   "Practice",
		"phase.review":     "Review",

		"workload.low":    "Light",
		"workload.medium": "Balanced",
		"workload.high":   "Heavy",

		"checkpoint.practice":   "Practice set: %d questions",
		"checkpoint.timed_test": "Timed mock test",

		"feasibility.empty":       "No curriculum content to schedule",
		"feasibility.comfortable": "Your weekly hours comfortably cover the curriculum",
		"feasibility.tight":       "Your weekly hours just cover the curriculum",
		"feasibility.infeasible":  "Your weekly hours are not enough to cover the curriculum",

		"level.weak":     "Needs work",
		"level.moderate": "Getting there",
		"level.strong":   "Strong",

		"ui.quiz.title":     "Self-assessment",
		"ui.quiz.progress":  "Question %d of %d",
		"ui.quiz.check":     "Quick check",
		"ui.results.title":  "Your results",
		"ui.results.weak":   "Focus first on: %s",
		"ui.results.plan":   "%d sprints over %d weeks",
		"ui.results.noplan": "A study plan could not be generated: %s",
		"ui.loading":        "Working on it...",

		"ui.home.title":      "Home",
		"ui.home.tagline":    "Find your weak spots, then plan the weeks to your exam.",
		"ui.home.start":      "Take the assessment",
		"ui.home.latest":     "Latest results",
		"ui.home.quit":       "Quit",
		"ui.home.last":       "Last assessment: %s",
		"ui.quiz.correct":    "Correct",
		"ui.quiz.wrong":      "Not quite",
		"ui.quiz.next":       "Press enter to continue",
		"ui.budget.title":    "Study budget",
		"ui.budget.intro":    "How much time do you have before the exam?",
		"ui.budget.weeks":    "Weeks to the exam",
		"ui.budget.hours":    "Study hours per week",
		"ui.budget.invalid":  "enter a positive number",
		"ui.budget.skip":     "Skip planning",
		"ui.results.sprint":  "Sprint %d · weeks %d-%d",
		"ui.results.minutes": "%d of %d min",
		"ui.results.more":    "... %d more sprints",
		"ui.results.unsched": "%d submodules did not fit the budget",
		"ui.results.imputed": "no rating given",
		"ui.results.strat":   "Plan: %s",
		"ui.coach.title":     "Coach",
		"ui.coach.waiting":   "The coach is reading your plan...",
		"ui.coach.failed":    "The coach is unavailable right now.",
		"ui.coach.off":       "Coach disabled",
		"ui.coach.on":        "Coach on",
		"ui.key.select":      "Select",
		"ui.key.back":        "Back",
		"ui.key.next":        "Next field",
		"ui.key.strategy":    "Switch plan",
		"ui.key.budget":      "New budget",
		"ui.key.quit":        "Quit",
		"ui.key.details":     "Details",
		"ui.key.open":        "Open",
		"ui.home.history":    "Past assessments",
		"ui.home.starthint":  "%d questions, about five minutes",
		"ui.home.histhint":   "Reopen an earlier result or compare plans",
		"ui.toosmall":        "Terminal too small\n\nPlease resize to at\nleast %d x %d\n\nCurrent: %d x %d",
		"ui.history.title":   "History",
		"ui.history.empty":   "No assessments yet. Take the first one!",
		"ui.history.plans":   "%d plans, last %dw × %gh",
		"ui.history.noplan":  "no plan",

		"strategy.priority":   "weakest first",
		"strategy.curriculum": "curriculum order",
	},
	LocaleIT: {
		"domain.reading":    "Comprensione del testo",
		"domain.logic":      "Ragionamento logico",
		"domain.spatial":    "Disegno e ragionamento spaziale",
		"domain.math":       "Matematica",
		"domain.physics":    "Fisica",
		"domain.humanities": "Storia e cultura generale",

		"self.prompt":   "Quanto ti senti sicuro in %s?",
		"self.option.1": "Per niente sicuro",
		"self.option.2": "Poco sicuro",
		"self.option.3": "Abbastanza sicuro",
		"self.option.4": "Molto sicuro",
		"self.option.5": "Sicurissimo",

		"check.reading.easy.prompt":   "\"La commissione ha rinviato il voto.\" Che cosa è successo al voto?",
		"check.reading.easy.a":        "È stato annullato",
		"check.reading.easy.b":        "È stato posticipato",
		"check.reading.easy.c":        "È stato anticipato",
		"check.reading.easy.d":        "È stato ripetuto",
		"check.reading.medium.prompt": "\"Pochi critici lodarono l'edificio, eppure divenne un simbolo.\" Quale deduzione è corretta?",
		"check.reading.medium.a":      "La maggior parte dei critici lo lodò",
		"check.reading.medium.b":      "I critici progettarono l'edificio",
		"check.reading.medium.c":      "Il giudizio del pubblico differiva da quello della critica",
		"check.reading.medium.d":      "L'edificio fu demolito",
		"check.reading.hard.prompt":   "\"La sobrietà dell'architetto era essa stessa una dichiarazione.\" L'autore intende che:",
		"check.reading.hard.a":        "La semplicità esprimeva una posizione voluta",
		"check.reading.hard.b":        "L'architetto era privo di idee",
		"check.reading.hard.c":        "L'edificio era incompiuto",
		"check.reading.hard.d":        "Sulla facciata erano incise delle frasi",

		"check.logic.easy.prompt":   "Tutti i mattoni sono blocchi. Questo è un mattone. Quindi:",
		"check.logic.easy.a":        "Tutti i blocchi sono mattoni",
		"check.logic.easy.b":        "Non è un blocco",
		"check.logic.easy.c":        "Non segue nulla",
		"check.logic.easy.d":        "È un blocco",
		"check.logic.medium.prompt": "Quale numero segue: 2, 6, 12, 20, 30, ?",
		"check.logic.hard.prompt":   "Nessuna cupola è piatta e alcuni tetti sono cupole. Che cosa è necessariamente vero?",
		"check.logic.hard.a":        "Nessun tetto è piatto",
		"check.logic.hard.b":        "Tutte le cupole sono tetti",
		"check.logic.hard.c":        "Alcuni tetti non sono piatti",
		"check.logic.hard.d":        "Alcune cose piatte sono cupole",

		"check.spatial.easy.prompt":   "Quante facce ha un cubo?",
		"check.spatial.medium.prompt": "Un foglio quadrato viene piegato a metà due volte e forato una volta lontano dalle pieghe. Quanti fori compaiono aprendolo?",
		"check.spatial.hard.prompt":   "Quanti spigoli ha un prisma triangolare?",

		"check.math.easy.prompt":   "Risolvi 3x + 4 = 19.",
		"check.math.medium.prompt": "Quanto vale log10(0,001)?",
		"check.math.medium.d":      "0,001",
		"check.math.hard.prompt":   "Quante soluzioni reali ha x^2 - 4|x| + 3 = 0?",

		"check.physics.easy.prompt":   "Qual è l'unità di misura della forza nel SI?",
		"check.physics.medium.prompt": "Un oggetto cade da fermo per 2 s (g = 10 m/s^2). Qual è la sua velocità?",
		"check.physics.hard.prompt":   "Due resistori da 6 ohm in parallelo sono in serie con un resistore da 3 ohm. Qual è la resistenza totale?",

		"check.humanities.easy.prompt":   "Chi ha dipinto la volta della Cappella Sistina?",
		"check.humanities.medium.prompt": "In quale epoca fu costruito il Pantheon di Roma?",
		"check.humanities.medium.a":      "Impero romano",
		"check.humanities.medium.b":      "Rinascimento",
		"check.humanities.medium.c":      "Barocco",
		"check.humanities.medium.d":      "Medioevo",
		"check.humanities.hard.prompt":   "A quale movimento appartengono i \"Cinque punti dell'architettura\" di Le Corbusier?",
		"check.humanities.hard.a":        "Neogotico",
		"check.humanities.hard.b":        "Art Nouveau",
		"check.humanities.hard.c":        "Neoclassicismo",
		"check.humanities.hard.d":        "Movimento moderno",

		"goal.foundation": "Costruisci le basi di %s",
		"goal.practice":   "Esercitati e consolida %s",
		"goal.review":     "Ripassa %s e simula le condizioni d'esame",
		"goal.open":       "Ripasso misto e simulazioni",
		"goal.and":        " e ",

		"phase.foundation": "Basi",
		"phase.practice":   "Esercitazione",
		"phase.review":     "Ripasso",

		"workload.low":    "Leggero",
		"workload.medium": "Equilibrato",
		"workload.high":   "Intenso",

		"checkpoint.practice":   "Esercitazione: %d domande",
		"checkpoint.timed_test": "Simulazione a tempo",

		"feasibility.empty":       "Nessun contenuto da pianificare",
		"feasibility.comfortable": "Le ore settimanali coprono il programma con margine",
		"feasibility.tight":       "Le ore settimanali coprono appena il programma",
		"feasibility.infeasible":  "Le ore settimanali non bastano a coprire il programma",

		"level.weak":     "Da rafforzare",
		"level.moderate": "In crescita",
		"level.strong":   "Solido",

		"ui.quiz.title":     "Autovalutazione",
		"ui.quiz.progress":  "Domanda %d di %d",
		"ui.quiz.check":     "Verifica rapida",
		"ui.results.title":  "I tuoi risultati",
		"ui.results.weak":   "Concentrati prima su: %s",
		"ui.results.plan":   "%d sprint in %d settimane",
		"ui.results.noplan": "Impossibile generare il piano di studio: %s",
		"ui.loading":        "Elaborazione in corso...",

		"ui.home.title":      "Home",
		"ui.home.tagline":    "Scopri i tuoi punti deboli e pianifica le settimane fino all'esame.",
		"ui.home.start":      "Inizia l'autovalutazione",
		"ui.home.latest":     "Ultimi risultati",
		"ui.home.quit":       "Esci",
		"ui.home.last":       "Ultima autovalutazione: %s",
		"ui.quiz.correct":    "Corretto",
		"ui.quiz.wrong":      "Non proprio",
		"ui.quiz.next":       "Premi invio per continuare",
		"ui.budget.title":    "Tempo di studio",
		"ui.budget.intro":    "Quanto tempo hai prima dell'esame?",
		"ui.budget.weeks":    "Settimane all'esame",
		"ui.budget.hours":    "Ore di studio a settimana",
		"ui.budget.invalid":  "inserisci un numero positivo",
		"ui.budget.skip":     "Salta la pianificazione",
		"ui.results.sprint":  "Sprint %d · settimane %d-%d",
		"ui.results.minutes": "%d di %d min",
		"ui.results.more":    "... altri %d sprint",
		"ui.results.unsched": "%d sottomoduli non rientrano nel tempo disponibile",
		"ui.results.imputed": "nessuna valutazione",
		"ui.results.strat":   "Piano: %s",
		"ui.coach.title":     "Coach",
		"ui.coach.waiting":   "Il coach sta leggendo il tuo piano...",
		"ui.coach.failed":    "Il coach non è disponibile al momento.",
		"ui.coach.off":       "Coach disattivato",
		"ui.coach.on":        "Coach attivo",
		"ui.key.select":      "Seleziona",
		"ui.key.back":        "Indietro",
		"ui.key.next":        "Campo successivo",
		"ui.key.strategy":    "Cambia piano",
		"ui.key.budget":      "Nuovo budget",
		"ui.key.quit":        "Esci",
		"ui.key.details":     "Dettagli",
		"ui.key.open":        "Apri",
		"ui.home.history":    "Autovalutazioni precedenti",
		"ui.home.starthint":  "%d domande, circa cinque minuti",
		"ui.home.histhint":   "Riapri un risultato precedente o confronta i piani",
		"ui.toosmall":        "Terminale troppo piccolo\n\nAllarga la finestra ad\nalmeno %d x %d\n\nAttuale: %d x %d",
		"ui.history.title":   "Storico",
		"ui.history.empty":   "Nessuna autovalutazione. Inizia la prima!",
		"ui.history.plans":   "%d piani, ultimo %ds × %gh",
		"ui.history.noplan":  "nessun piano",

		"strategy.priority":   "prima i punti deboli",
		"strategy.curriculum": "ordine del programma",
	},
}
